package content

import "github.com/aumai/dhansetu/internal/model"

// builtinConcepts is the curated concept library, grouped by topic.
// Rates and slabs reflect published figures at curation time and are
// surfaced to users with a disclaimer rather than kept live.
var builtinConcepts = []model.Concept{
	// Savings
	{
		Topic: model.TopicSavings, Title: "Savings Account",
		Explanation: "A basic bank account that earns interest on your deposited money. Most banks offer 2.5-4% annual interest. Required for receiving salary, government subsidies, and digital payments.",
		Examples:    []string{"SBI Savings Account", "Jan Dhan Yojana Account", "Post Office Savings Account"},
		Level:       model.LevelBeginner, KeyTerms: []string{"interest rate", "minimum balance", "passbook"},
	},
	{
		Topic: model.TopicSavings, Title: "Fixed Deposit (FD)",
		Explanation: "Lock your money for a fixed period (7 days to 10 years) at a higher interest rate than savings accounts. Typically 6-7.5% annual interest. Early withdrawal incurs a penalty.",
		Examples:    []string{"1-year FD at 7%", "5-year Tax Saver FD under 80C"},
		Level:       model.LevelBeginner, KeyTerms: []string{"maturity", "premature withdrawal", "TDS"},
	},
	{
		Topic: model.TopicSavings, Title: "Recurring Deposit (RD)",
		Explanation: "Save a fixed amount every month for a chosen period. Earns similar interest as FD. Good for building a savings habit with small monthly amounts starting from Rs 100.",
		Examples:    []string{"Rs 500/month RD for 2 years", "Post Office RD at 6.7%"},
		Level:       model.LevelBeginner, KeyTerms: []string{"monthly installment", "maturity amount"},
	},
	{
		Topic: model.TopicSavings, Title: "Public Provident Fund (PPF)",
		Explanation: "Government-backed long-term savings scheme with 15-year lock-in. Currently offers ~7.1% tax-free interest. Maximum Rs 1.5L per year deposit. Triple tax benefit: investment, interest, and maturity all tax-free (EEE).",
		Examples:    []string{"PPF account in SBI or Post Office"},
		Level:       model.LevelIntermediate, KeyTerms: []string{"EEE tax benefit", "Section 80C", "15-year lock-in"},
	},
	// Insurance
	{
		Topic: model.TopicInsurance, Title: "Term Life Insurance",
		Explanation: "Pure life cover at low cost. Pays the sum assured to your nominee if you die during the policy term. No survival benefit. Most affordable form of life insurance. Rule of thumb: cover should be 10-15x annual income.",
		Examples:    []string{"Rs 1 Crore cover for Rs 700/month at age 30"},
		Level:       model.LevelBeginner, KeyTerms: []string{"sum assured", "premium", "nominee", "term"},
	},
	{
		Topic: model.TopicInsurance, Title: "Health Insurance",
		Explanation: "Covers hospitalization expenses. Mediclaim policies reimburse actual hospital bills up to sum insured. Family floater plans cover entire family under one sum insured. Mandatory to avoid financial ruin from medical emergencies.",
		Examples:    []string{"Rs 5L family floater for Rs 12,000/year"},
		Level:       model.LevelBeginner, KeyTerms: []string{"sum insured", "cashless", "copay", "waiting period"},
	},
	{
		Topic: model.TopicInsurance, Title: "PM Jeevan Jyoti Bima Yojana (PMJJBY)",
		Explanation: "Government life insurance scheme. Rs 2 lakh life cover for just Rs 436/year premium. Available for anyone aged 18-50 with a bank account. Auto-debited from bank account annually.",
		Examples:    []string{"Rs 436/year for Rs 2L life cover"},
		Level:       model.LevelBeginner, KeyTerms: []string{"annual premium", "auto-debit", "death claim"},
	},
	// Investment
	{
		Topic: model.TopicInvestment, Title: "Mutual Funds",
		Explanation: "Pool money from many investors to invest in stocks, bonds, or both. Managed by professional fund managers. Entry point as low as Rs 500 via SIP. Categories: equity (high risk/return), debt (low risk), hybrid (mixed).",
		Examples:    []string{"Nifty 50 Index Fund", "Liquid Fund for emergency money"},
		Level:       model.LevelIntermediate, KeyTerms: []string{"NAV", "SIP", "expense ratio", "CAGR"},
	},
	{
		Topic: model.TopicInvestment, Title: "Systematic Investment Plan (SIP)",
		Explanation: "Invest a fixed amount regularly (monthly/weekly) in mutual funds. Benefits from rupee cost averaging - buy more units when prices are low, fewer when high. Best started early for compounding benefit.",
		Examples:    []string{"Rs 1000/month SIP in index fund for 20 years"},
		Level:       model.LevelBeginner, KeyTerms: []string{"rupee cost averaging", "compounding", "SIP date"},
	},
	{
		Topic: model.TopicInvestment, Title: "National Pension System (NPS)",
		Explanation: "Government pension scheme for retirement savings. Two accounts: Tier I (locked till 60, tax benefits) and Tier II (flexible). Invest in equity, corporate bonds, and government securities. Additional Rs 50,000 deduction under Section 80CCD(1B).",
		Examples:    []string{"NPS Tier I with 75% equity allocation at age 30"},
		Level:       model.LevelIntermediate, KeyTerms: []string{"Tier I/II", "PFRDA", "annuity", "80CCD"},
	},
	// Credit
	{
		Topic: model.TopicCredit, Title: "Credit Score (CIBIL)",
		Explanation: "A 3-digit number (300-900) reflecting your creditworthiness. Banks check this before giving loans. Score above 750 is considered good. Maintained by CIBIL, Experian, Equifax, CRIF. Check free once a year from each bureau.",
		Examples:    []string{"Score 780 = easy loan approval at lower interest"},
		Level:       model.LevelBeginner, KeyTerms: []string{"CIBIL score", "credit report", "EMI default"},
	},
	{
		Topic: model.TopicCredit, Title: "Personal Loan vs Credit Card",
		Explanation: "Personal loans: fixed EMI, 10-18% interest, 1-5 year term. Credit cards: revolving credit, 24-42% annualized interest if not paid in full. Always pay credit card full amount by due date. Never pay only minimum due.",
		Examples:    []string{"Rs 5L personal loan at 12% for 3 years"},
		Level:       model.LevelIntermediate, KeyTerms: []string{"EMI", "interest rate", "minimum due", "billing cycle"},
	},
	// Taxation
	{
		Topic: model.TopicTaxation, Title: "Income Tax Basics",
		Explanation: "Income up to Rs 3L is tax-free (new regime FY 2024-25). Slabs: 3-7L at 5%, 7-10L at 10%, 10-12L at 15%, 12-15L at 20%, above 15L at 30%. Old regime allows deductions under 80C (up to 1.5L), 80D (health insurance), HRA, etc.",
		Examples:    []string{"Rs 8L income = ~Rs 30,000 tax under new regime"},
		Level:       model.LevelBeginner, KeyTerms: []string{"slab", "old vs new regime", "Section 80C", "ITR"},
	},
	{
		Topic: model.TopicTaxation, Title: "Section 80C Deductions",
		Explanation: "Claim up to Rs 1.5 lakh deduction from taxable income under old regime. Eligible investments: PPF, ELSS mutual funds, 5-year FD, NSC, life insurance premium, EPF, tuition fees for children, home loan principal.",
		Examples:    []string{"Rs 1.5L in ELSS = save Rs 46,800 tax at 30% slab"},
		Level:       model.LevelIntermediate, KeyTerms: []string{"deduction", "EEE", "ELSS", "lock-in period"},
	},
	// Digital payments
	{
		Topic: model.TopicDigitalPayments, Title: "UPI (Unified Payments Interface)",
		Explanation: "Instant bank-to-bank transfer using mobile phone. Free of charge. Works 24/7. Send/receive money using UPI ID (yourname@bank), phone number, or QR code. Daily limit typically Rs 1 lakh. India's most popular digital payment system.",
		Examples:    []string{"Pay shopkeeper via PhonePe QR scan", "Send money via Google Pay"},
		Level:       model.LevelBeginner, KeyTerms: []string{"UPI ID", "VPA", "QR code", "UPI PIN"},
	},
	{
		Topic: model.TopicDigitalPayments, Title: "Digital Payment Security",
		Explanation: "Never share UPI PIN, OTP, or CVV with anyone. Banks/UPI apps never call asking for PIN/OTP. Verify receiver details before sending. Check transaction amount carefully. Use app lock. Report fraud immediately to bank and cybercrime.gov.in.",
		Examples:    []string{"Phishing call claiming to be bank - always hang up"},
		Level:       model.LevelBeginner, KeyTerms: []string{"UPI PIN", "OTP", "phishing", "fraud reporting"},
	},
}

package content

import "github.com/aumai/dhansetu/internal/model"

func intPtr(v int) *int { return &v }

// builtinSchemes covers the central government schemes most relevant to
// first-time savers. Age bounds are nil where the scheme publishes none.
var builtinSchemes = []model.Scheme{
	{
		Name:        "Pradhan Mantri Jan Dhan Yojana (PMJDY)",
		Description: "Zero-balance bank account with RuPay debit card, Rs 2 lakh accident insurance, and Rs 30,000 life cover.",
		Eligibility: "Any Indian citizen without a bank account",
		Benefits:    "Zero balance account, RuPay card, Rs 2L accident cover, Rs 30K life cover, overdraft up to Rs 10,000",
		HowToApply:  "Visit any bank branch with Aadhaar card and passport photo",
		Ministry:    "Ministry of Finance", TargetGroup: "unbanked",
	},
	{
		Name:        "Atal Pension Yojana (APY)",
		Description: "Guaranteed pension of Rs 1,000-5,000/month after age 60, based on contribution amount and joining age.",
		Eligibility: "Indian citizens aged 18-40, with a bank account",
		Benefits:    "Guaranteed monthly pension of Rs 1000-5000 after 60. Government co-contributes 50% for 5 years for non-taxpayers.",
		HowToApply:  "Apply through your bank branch or net banking. Auto-debit from savings account.",
		Ministry:    "Ministry of Finance", MinAge: intPtr(18), MaxAge: intPtr(40), TargetGroup: "unorganized_workers",
	},
	{
		Name:        "PM Jeevan Jyoti Bima Yojana (PMJJBY)",
		Description: "Life insurance cover of Rs 2 lakh at just Rs 436/year premium.",
		Eligibility: "Bank account holders aged 18-50",
		Benefits:    "Rs 2 lakh life cover. Premium auto-debited annually.",
		HowToApply:  "Enroll through bank (form available at branch or net banking). One-time consent for auto-debit.",
		Ministry:    "Ministry of Finance", MinAge: intPtr(18), MaxAge: intPtr(50), TargetGroup: "all",
	},
	{
		Name:        "PM Suraksha Bima Yojana (PMSBY)",
		Description: "Accident insurance of Rs 2 lakh at just Rs 20/year premium.",
		Eligibility: "Bank account holders aged 18-70",
		Benefits:    "Rs 2L for accidental death, Rs 2L for total permanent disability, Rs 1L for partial permanent disability.",
		HowToApply:  "Enroll through bank branch or net banking. Rs 20 auto-debited annually.",
		Ministry:    "Ministry of Finance", MinAge: intPtr(18), MaxAge: intPtr(70), TargetGroup: "all",
	},
	{
		Name:        "PM Kisan Samman Nidhi (PM-KISAN)",
		Description: "Rs 6,000/year direct income support to farmer families in 3 installments of Rs 2,000 each.",
		Eligibility: "All landholding farmer families (subject to exclusion criteria)",
		Benefits:    "Rs 6,000 per year in 3 installments directly to bank account via DBT.",
		HowToApply:  "Register at pmkisan.gov.in or through Common Service Centre (CSC) with Aadhaar and land records.",
		Ministry:    "Ministry of Agriculture", TargetGroup: "farmers",
	},
	{
		Name:        "Sukanya Samriddhi Yojana (SSY)",
		Description: "Savings scheme for girl child with high interest rate (~8%) and full tax exemption (EEE).",
		Eligibility: "Parents/guardians of girl child below 10 years of age",
		Benefits:    "High interest (~8.2%), tax-free under 80C. Partial withdrawal at 18 for education. Matures at 21.",
		HowToApply:  "Open account at Post Office or designated bank with birth certificate of girl child.",
		Ministry:    "Ministry of Finance", TargetGroup: "girl_child",
	},
	{
		Name:        "Senior Citizens Saving Scheme (SCSS)",
		Description: "High-interest savings for senior citizens with quarterly interest payout.",
		Eligibility: "Indian citizens aged 60+ (55+ for retired defence/government employees)",
		Benefits:    "~8.2% interest paid quarterly. Max deposit Rs 30 lakh. Tax deduction under 80C.",
		HowToApply:  "Apply at Post Office or designated banks with age proof and retirement documents.",
		Ministry:    "Ministry of Finance", MinAge: intPtr(60), TargetGroup: "senior_citizens",
	},
	{
		Name:        "National Pension System (NPS)",
		Description: "Voluntary pension scheme for retirement planning with tax benefits.",
		Eligibility: "Indian citizens aged 18-70",
		Benefits:    "Market-linked returns. Extra Rs 50,000 deduction under 80CCD(1B). Partial withdrawal after 3 years.",
		HowToApply:  "Register at enps.nsdl.com with Aadhaar and PAN. Minimum Rs 500/month contribution.",
		Ministry:    "Ministry of Finance", MinAge: intPtr(18), MaxAge: intPtr(70), TargetGroup: "salaried_all",
	},
	{
		Name:        "PM Mudra Yojana (PMMY)",
		Description: "Loans up to Rs 10 lakh for non-corporate, non-farm small/micro enterprises.",
		Eligibility: "Any Indian citizen with a business plan for non-farm income generating activity",
		Benefits:    "Shishu (up to 50K), Kishore (50K-5L), Tarun (5L-10L). No collateral required.",
		HowToApply:  "Apply at any bank, NBFC, or MFI with business plan and KYC documents.",
		Ministry:    "Ministry of Finance", TargetGroup: "entrepreneurs",
	},
	{
		Name:        "Stand Up India",
		Description: "Bank loans between Rs 10 lakh and Rs 1 crore for SC/ST and women entrepreneurs.",
		Eligibility: "SC/ST or women entrepreneurs for greenfield enterprises in manufacturing/services/trading",
		Benefits:    "Composite loan of Rs 10L to Rs 1Cr. Covers 75% of project cost. Repayment up to 7 years.",
		HowToApply:  "Apply at standupmitra.in or visit bank branch with project report.",
		Ministry:    "Ministry of Finance", TargetGroup: "sc_st_women",
	},
}

package content

import "github.com/aumai/dhansetu/internal/model"

// builtinInvestments lists the common entry-level instruments. Returns are
// kept as published ranges, not point estimates.
var builtinInvestments = []model.InvestmentOption{
	{Name: "Public Provident Fund (PPF)", RiskLevel: model.RiskLow, ExpectedReturnPct: "7.1%", LockInYears: 15, TaxBenefit: true, MinInvestment: 500, Description: "Government-backed, EEE tax status, 15-year lock-in"},
	{Name: "Fixed Deposit (FD)", RiskLevel: model.RiskLow, ExpectedReturnPct: "6.5-7.5%", LockInYears: 0.25, TaxBenefit: false, MinInvestment: 1000, Description: "Bank deposit with guaranteed returns, premature withdrawal with penalty"},
	{Name: "Recurring Deposit (RD)", RiskLevel: model.RiskLow, ExpectedReturnPct: "6.5-7%", LockInYears: 0.5, TaxBenefit: false, MinInvestment: 100, Description: "Monthly fixed deposit, good for building savings habit"},
	{Name: "ELSS Mutual Fund", RiskLevel: model.RiskHigh, ExpectedReturnPct: "12-15%", LockInYears: 3, TaxBenefit: true, MinInvestment: 500, Description: "Equity fund with 3-year lock-in and 80C tax benefit"},
	{Name: "Index Fund (Nifty 50)", RiskLevel: model.RiskModerate, ExpectedReturnPct: "10-12%", LockInYears: 0, TaxBenefit: false, MinInvestment: 500, Description: "Passive fund tracking Nifty 50, low expense ratio"},
	{Name: "Debt Mutual Fund", RiskLevel: model.RiskLow, ExpectedReturnPct: "6-8%", LockInYears: 0, TaxBenefit: false, MinInvestment: 500, Description: "Invests in bonds and government securities, lower risk than equity"},
	{Name: "National Pension System (NPS)", RiskLevel: model.RiskModerate, ExpectedReturnPct: "8-10%", LockInYears: 0, TaxBenefit: true, MinInvestment: 500, Description: "Retirement-focused, extra 80CCD(1B) deduction of Rs 50K"},
	{Name: "Sukanya Samriddhi (SSY)", RiskLevel: model.RiskLow, ExpectedReturnPct: "8.2%", LockInYears: 21, TaxBenefit: true, MinInvestment: 250, Description: "For girl child, highest small savings rate, EEE status"},
	{Name: "Gold (Sovereign Gold Bond)", RiskLevel: model.RiskModerate, ExpectedReturnPct: "8-10%", LockInYears: 8, TaxBenefit: true, MinInvestment: 4500, Description: "Government gold bonds, 2.5% annual interest + gold appreciation, tax-free on maturity"},
}

// Package model defines domain types for dhansetu content and planning.
package model

import (
	"fmt"
	"strings"
)

// Topic is a financial literacy topic category.
type Topic string

// All topic categories.
const (
	TopicSavings         Topic = "savings"
	TopicInsurance       Topic = "insurance"
	TopicInvestment      Topic = "investment"
	TopicCredit          Topic = "credit"
	TopicTaxation        Topic = "taxation"
	TopicDigitalPayments Topic = "digital_payments"
)

// Topics lists every topic in display order.
var Topics = []Topic{
	TopicSavings,
	TopicInsurance,
	TopicInvestment,
	TopicCredit,
	TopicTaxation,
	TopicDigitalPayments,
}

// ParseTopic validates a raw topic string from a flag or content pack.
func ParseTopic(raw string) (Topic, error) {
	for _, t := range Topics {
		if string(t) == raw {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown topic %q (expected one of: %s)", raw, joinTopics(Topics))
}

func joinTopics(topics []Topic) string {
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Level is a financial literacy level.
type Level string

// All literacy levels.
const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels lists every level in ascending order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ParseLevel validates a raw level string from a flag or content pack.
func ParseLevel(raw string) (Level, error) {
	for _, l := range Levels {
		if string(l) == raw {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q (expected one of: beginner, intermediate, advanced)", raw)
}

// RiskLevel classifies an investment option's risk.
type RiskLevel string

// All risk levels.
const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// RiskLevels lists every risk level in ascending order.
var RiskLevels = []RiskLevel{RiskLow, RiskModerate, RiskHigh}

// ParseRisk validates a raw risk string from a flag or content pack.
func ParseRisk(raw string) (RiskLevel, error) {
	for _, r := range RiskLevels {
		if string(r) == raw {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown risk level %q (expected one of: low, moderate, high)", raw)
}

// BudgetCategory is a budget allocation bucket.
type BudgetCategory string

// Budget allocation categories. CategoryEMI is part of the published
// model but the planner does not allocate to it.
const (
	CategoryNeeds   BudgetCategory = "needs"
	CategoryWants   BudgetCategory = "wants"
	CategorySavings BudgetCategory = "savings"
	CategoryEMI     BudgetCategory = "emi"
)

// BudgetCategories lists the categories a plan allocates, in display order.
var BudgetCategories = []BudgetCategory{CategoryNeeds, CategoryWants, CategorySavings}

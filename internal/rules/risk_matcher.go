package rules

import (
	"strings"

	"github.com/inuteam04/vitamin-dispenser/internal/models"
)

// riskKeywords mark an explanatory sentence as describing a risk factor
// when the rule table carries no explicit flag. Heuristic, matched on the
// corpora the rule tables come from (Korean and English sentences).
var riskKeywords = []string{
	"increase", "risk", "worsen", "aggravate",
	"증가", "위험", "악화", "높임", "높입니다",
}

// MatchRisks cross-references free-text food input and selected disease
// labels against the rule table and returns the rules that flag a risk.
// Rules come back in the table's natural order; callers must not depend
// on ordering. Empty input or an empty table yields an empty result, not
// an error.
func MatchRisks(foodInput string, diseases []string, table []models.DiseaseRule) []models.DiseaseRule {
	tokens := tokenizeFoods(foodInput)
	if len(tokens) == 0 || len(diseases) == 0 {
		return nil
	}

	selected := make(map[string]bool, len(diseases))
	for _, d := range diseases {
		selected[strings.ToLower(strings.TrimSpace(d))] = true
	}

	var matched []models.DiseaseRule
	for _, rule := range table {
		if !selected[strings.ToLower(rule.DiseaseKo)] && !selected[strings.ToLower(rule.DiseaseEn)] {
			continue
		}
		if !foodMatches(rule.FoodName, tokens) {
			continue
		}
		if !isRiskFactor(rule) {
			continue
		}
		matched = append(matched, rule)
	}
	return matched
}

// tokenizeFoods splits comma/newline-separated input into lowercase
// tokens. A trailing quantity annotation ("kimchi stew: 300g") is cut at
// the colon.
func tokenizeFoods(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	var tokens []string
	for _, f := range fields {
		if idx := strings.Index(f, ":"); idx >= 0 {
			f = f[:idx]
		}
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// foodMatches reports whether the rule's food name contains any input
// token as a substring (case-insensitive).
func foodMatches(ruleFood string, tokens []string) bool {
	food := strings.ToLower(ruleFood)
	for _, token := range tokens {
		if strings.Contains(food, token) {
			return true
		}
	}
	return false
}

// isRiskFactor checks the explicit flag first, then falls back to
// risk-indicating keywords in the explanatory sentence.
func isRiskFactor(rule models.DiseaseRule) bool {
	if rule.IsCause {
		return true
	}
	reason := strings.ToLower(rule.Reason)
	for _, kw := range riskKeywords {
		if strings.Contains(reason, kw) {
			return true
		}
	}
	return false
}

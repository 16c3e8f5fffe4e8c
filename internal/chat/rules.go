package chat

import "strings"

// Rule is one keyword-triggered canned response. Keywords are
// case-insensitive substrings; rules are checked in declaration order and
// the first hit wins.
type Rule struct {
	Intent   string
	Keywords []string
	Response string
}

// DefaultRules is the static rule table covering the well-known wellness
// concerns that should always get a predictable answer.
var DefaultRules = []Rule{
	{
		Intent:   "stress",
		Keywords: []string{"stress", "anxiety", "pressure", "overwhelmed"},
		Response: "Feeling stressed is common 🌿 Try deep breathing or short walks.",
	},
	{
		Intent:   "sleep",
		Keywords: []string{"sleep", "insomnia", "tired"},
		Response: "Good sleep improves mental health 😴 Try sleeping at a fixed time.",
	},
	{
		Intent:   "exercise",
		Keywords: []string{"exercise", "workout", "yoga", "fitness"},
		Response: "Yoga and walking help both mental and physical health 💪",
	},
	{
		Intent:   "diet",
		Keywords: []string{"diet", "food", "nutrition"},
		Response: "A balanced diet supports both mind and body 🥗",
	},
}

// definitionalPrefixes route "what is X" style questions past the rule
// table; canned responses are too generic for definitional queries, so they
// go to retrieval instead.
var definitionalPrefixes = []string{"what is", "what's", "define"}

// MatchRule scans rules against message and returns the first matching
// response. Messages starting with a definitional prefix never match.
// Pure function of (rules, message).
func MatchRule(rules []Rule, message string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(message))

	for _, prefix := range definitionalPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			return "", false
		}
	}

	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, keyword) {
				return rule.Response, true
			}
		}
	}
	return "", false
}

package ai

import (
	"regexp"
	"strings"
)

// Keyword sets matched against discussion messages of structured transcripts.
var (
	DecisionKeywords = []string{"decide", "decision", "agreed", "concluded"}
	ActionKeywords   = []string{"action", "task", "todo", "to-do", "need to", "should"}
)

var (
	// actionIntentPattern is the "will ... do" action rule, applied to lowercased messages
	actionIntentPattern = regexp.MustCompile(`will.*do`)

	// Sentence-like fragments of plain text that carry a keyword. The prefix is
	// lazy so a fragment starts right after the previous terminator.
	decisionSentencePattern = regexp.MustCompile(`(?i)[^.!?]*?(?:decid|decision|agree|conclud|determin)[^.!?]*[.!?]`)
	actionSentencePattern   = regexp.MustCompile(`(?i)[^.!?]*?(?:action|task|todo|to-do|need to|should|will.*do)[^.!?]*[.!?]`)
)

// ExtractDecisions returns decision bullets in order of appearance. For a
// structured transcript the outcome always comes first.
func ExtractDecisions(n NormalizedTranscript) []string {
	if st := n.Structured; st != nil {
		var decisions []string
		if st.Outcome != "" {
			decisions = append(decisions, st.Outcome)
		}
		for _, entry := range st.Discussion {
			if entry.Message != "" && containsAny(strings.ToLower(entry.Message), DecisionKeywords) {
				decisions = append(decisions, strings.TrimSpace(entry.Message))
			}
		}
		return decisions
	}
	return matchFragments(decisionSentencePattern, n.Text)
}

// ExtractActions returns action item bullets in order of appearance
func ExtractActions(n NormalizedTranscript) []string {
	if st := n.Structured; st != nil {
		var actions []string
		for _, entry := range st.Discussion {
			if entry.Message == "" {
				continue
			}
			lower := strings.ToLower(entry.Message)
			if containsAny(lower, ActionKeywords) || actionIntentPattern.MatchString(lower) {
				actions = append(actions, strings.TrimSpace(entry.Message))
			}
		}
		return actions
	}
	return matchFragments(actionSentencePattern, n.Text)
}

func matchFragments(pattern *regexp.Regexp, text string) []string {
	matches := pattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSpace(m))
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DiscussionEntry is one speaker turn of a structured transcript
type DiscussionEntry struct {
	Speaker string `json:"speaker"`
	Message string `json:"message"`
}

// StructuredTranscript is a transcript submitted as a JSON object.
// String fields are empty when absent; Participants and Discussion are nil
// when absent and non-nil (possibly empty) when the key held an array.
type StructuredTranscript struct {
	Title        string            `json:"title,omitempty"`
	Date         string            `json:"date,omitempty"`
	Participants []string          `json:"participants,omitempty"`
	Discussion   []DiscussionEntry `json:"discussion,omitempty"`
	Outcome      string            `json:"outcome,omitempty"`
}

// NormalizedTranscript is the plain-text view of a transcript used by the
// heuristic generator. Structured is nil for plain-text input.
type NormalizedTranscript struct {
	Text       string
	Structured *StructuredTranscript
}

// IsStructured reports whether the raw input parsed as a structured transcript
func (n NormalizedTranscript) IsStructured() bool {
	return n.Structured != nil
}

// Normalize detects a structured transcript and renders it as plain text.
// Anything that does not parse is returned unchanged as plain text.
func Normalize(raw string) NormalizedTranscript {
	st, ok := parseStructured(raw)
	if !ok {
		return NormalizedTranscript{Text: raw}
	}
	return NormalizedTranscript{Text: st.render(), Structured: st}
}

// parseStructured only attempts a parse when the trimmed input looks like an object
func parseStructured(raw string) (*StructuredTranscript, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return nil, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return nil, false
	}

	// Each field is decoded on its own; a field of the wrong type counts as absent.
	return &StructuredTranscript{
		Title:        decodeString(fields["title"]),
		Date:         decodeString(fields["date"]),
		Participants: decodeStrings(fields["participants"]),
		Discussion:   decodeDiscussion(fields["discussion"]),
		Outcome:      decodeString(fields["outcome"]),
	}, true
}

func (st *StructuredTranscript) render() string {
	var b strings.Builder

	if st.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", st.Title)
	}
	if st.Date != "" {
		fmt.Fprintf(&b, "Date: %s\n", st.Date)
	}
	if st.Participants != nil {
		fmt.Fprintf(&b, "Participants: %s\n\n", strings.Join(st.Participants, ", "))
	}
	if st.Discussion != nil {
		b.WriteString("Discussion:\n")
		for _, entry := range st.Discussion {
			if entry.Speaker == "" || entry.Message == "" {
				continue
			}
			fmt.Fprintf(&b, "%s: %s\n", entry.Speaker, entry.Message)
		}
	}
	if st.Outcome != "" {
		fmt.Fprintf(&b, "\nOutcome: %s\n", st.Outcome)
	}

	return b.String()
}

func decodeString(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func decodeStrings(raw json.RawMessage) []string {
	if raw == nil {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

func decodeDiscussion(raw json.RawMessage) []DiscussionEntry {
	if raw == nil {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil
	}

	out := make([]DiscussionEntry, 0, len(items))
	for _, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			continue
		}
		out = append(out, DiscussionEntry{
			Speaker: decodeString(fields["speaker"]),
			Message: decodeString(fields["message"]),
		})
	}
	return out
}

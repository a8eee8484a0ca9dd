package ai

import (
	"fmt"
	"regexp"
	"strings"
)

// Style is the summary layout chosen from the instruction
type Style int

const (
	StyleDefault Style = iota
	StyleBulleted
	StyleExecutive
	StyleActionFocused
)

func (s Style) String() string {
	switch s {
	case StyleBulleted:
		return "bulleted"
	case StyleExecutive:
		return "executive"
	case StyleActionFocused:
		return "action_focused"
	default:
		return "default"
	}
}

const (
	maxPlainSentences = 5

	executiveExtensiveWords = 200
	executiveExcerptMin     = 20
	executiveExcerptFrom    = 10
	executiveExcerptTo      = 30

	defaultExtensiveWords = 500
	defaultExcerptMin     = 50
	defaultExcerptFrom    = 20
	defaultExcerptTo      = 50

	noDecisionsBullet = "* No specific decisions identified in the transcript\n"
	noActionsBullet   = "* No specific action items identified in the transcript\n"
)

var (
	// sentencePattern picks whole sentences, terminators included
	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)
	// sentenceTerminators splits a message into sentence fragments
	sentenceTerminators = regexp.MustCompile(`[.!?]+`)
)

// Action-focused output is a fixed list and ignores the transcript.
// TODO: build this list from ExtractActions like the bulleted style does.
var staticActionItems = []string{
	"Review the proposed changes",
	"Follow up with team members about timeline",
	"Prepare documentation for next phase",
	"Schedule follow-up meeting",
}

// SelectStyle picks a style from the instruction; the first matching rule wins,
// so "bullet" beats "action".
func SelectStyle(instruction string) Style {
	lower := strings.ToLower(instruction)
	switch {
	case strings.Contains(lower, "bullet"):
		return StyleBulleted
	case strings.Contains(lower, "executive") || strings.Contains(lower, "concise"):
		return StyleExecutive
	case strings.Contains(lower, "action"):
		return StyleActionFocused
	default:
		return StyleDefault
	}
}

// GenerateHeuristicSummary builds a summary without a language model. It is a
// pure function of its inputs and always returns a non-empty string.
func GenerateHeuristicSummary(text, instruction string) string {
	n := Normalize(text)

	// Single-space split: runs of spaces or newlines yield empty tokens that still count.
	words := strings.Split(n.Text, " ")

	switch SelectStyle(instruction) {
	case StyleBulleted:
		return renderBulleted(n)
	case StyleExecutive:
		return renderExecutive(words)
	case StyleActionFocused:
		return renderActionFocused()
	default:
		return renderDefault(words)
	}
}

func renderBulleted(n NormalizedTranscript) string {
	var b strings.Builder
	b.WriteString("## Meeting Summary\n\n")

	if st := n.Structured; st != nil {
		if st.Title != "" {
			fmt.Fprintf(&b, "* **Topic**: %s\n", st.Title)
		}
		if st.Date != "" {
			fmt.Fprintf(&b, "* **Date**: %s\n", st.Date)
		}
		if st.Participants != nil {
			fmt.Fprintf(&b, "* **Participants**: %s\n\n", strings.Join(st.Participants, ", "))
		}
		for _, entry := range st.Discussion {
			if entry.Message == "" {
				continue
			}
			for _, fragment := range sentenceTerminators.Split(entry.Message, -1) {
				if s := strings.TrimSpace(fragment); s != "" {
					fmt.Fprintf(&b, "* %s\n", s)
				}
			}
		}
	} else {
		sentences := sentencePattern.FindAllString(n.Text, maxPlainSentences)
		for _, s := range sentences {
			fmt.Fprintf(&b, "* %s\n", strings.TrimSpace(s))
		}
	}

	b.WriteString("\n## Key Decisions\n\n")
	decisions := ExtractDecisions(n)
	if len(decisions) == 0 {
		b.WriteString(noDecisionsBullet)
	}
	for _, d := range decisions {
		fmt.Fprintf(&b, "* %s\n", d)
	}

	b.WriteString("\n## Action Items\n\n")
	actions := ExtractActions(n)
	switch {
	case len(actions) > 0:
		for _, a := range actions {
			fmt.Fprintf(&b, "* %s\n", a)
		}
	case n.Structured != nil && n.Structured.Title != "":
		fmt.Fprintf(&b, "* Follow up on %s discussion\n", n.Structured.Title)
	default:
		b.WriteString(noActionsBullet)
	}

	return b.String()
}

func renderExecutive(words []string) string {
	var b strings.Builder
	b.WriteString("# Executive Summary\n\n")

	scope := "a brief discussion"
	if len(words) > executiveExtensiveWords {
		scope = "several key topics"
	}
	fmt.Fprintf(&b, "This meeting covered %s related to the project. ", scope)

	if len(words) > executiveExcerptMin {
		b.WriteString(joinWords(words, executiveExcerptFrom, executiveExcerptTo))
		b.WriteString(". ")
	}

	b.WriteString("\n\nThe main outcomes were to continue development and address outstanding issues.")
	return b.String()
}

func renderActionFocused() string {
	var b strings.Builder
	b.WriteString("# Action Items\n\n")
	for i, item := range staticActionItems {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return b.String()
}

func renderDefault(words []string) string {
	var b strings.Builder
	b.WriteString("# Meeting Summary\n\n")

	b.WriteString("The meeting ")
	if len(words) > defaultExtensiveWords {
		b.WriteString("was extensive and ")
	}
	b.WriteString("covered various topics related to the project. ")

	if len(words) > defaultExcerptMin {
		fmt.Fprintf(&b, "Some key points discussed: \"%s...\" ", joinWords(words, defaultExcerptFrom, defaultExcerptTo))
	}

	b.WriteString("\n\nConclusions and next steps were outlined for team members.")
	return b.String()
}

// joinWords joins words[from:to], clamping to the slice bounds
func joinWords(words []string, from, to int) string {
	if to > len(words) {
		to = len(words)
	}
	if from >= to {
		return ""
	}
	return strings.Join(words[from:to], " ")
}

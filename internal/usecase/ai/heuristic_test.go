package ai

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func words(n int) string {
	w := make([]string, n)
	for i := range w {
		w[i] = fmt.Sprintf("w%d", i+1)
	}
	return strings.Join(w, " ")
}

func TestSelectStyle(t *testing.T) {
	tests := []struct {
		instruction string
		want        Style
	}{
		{instruction: "Summarize in bullet points", want: StyleBulleted},
		{instruction: "bullet action items", want: StyleBulleted},
		{instruction: "BULLETS please", want: StyleBulleted},
		{instruction: "An executive summary", want: StyleExecutive},
		{instruction: "Keep it concise, list actions", want: StyleExecutive},
		{instruction: "Highlight only action items", want: StyleActionFocused},
		{instruction: "Summarize", want: StyleDefault},
		{instruction: "", want: StyleDefault},
	}

	for _, tt := range tests {
		t.Run(tt.instruction, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectStyle(tt.instruction))
		})
	}
}

func TestGenerate_BulletedStructured(t *testing.T) {
	raw := `{"title":"Sync","discussion":[{"speaker":"A","message":"We decided to ship."}]}`

	got := GenerateHeuristicSummary(raw, "bullet points")

	want := "## Meeting Summary\n\n" +
		"* **Topic**: Sync\n" +
		"* We decided to ship\n" +
		"\n## Key Decisions\n\n" +
		"* We decided to ship.\n" +
		"\n## Action Items\n\n" +
		"* Follow up on Sync discussion\n"
	assert.Equal(t, want, got)
}

func TestGenerate_BulletedStructuredFull(t *testing.T) {
	raw := `{
		"title": "Planning",
		"date": "May 2",
		"participants": ["Ann", "Bob"],
		"discussion": [
			{"speaker": "Ann", "message": "Budget is tight! Should we cut scope?"},
			{"speaker": "Bob", "message": "I will do the estimate."}
		],
		"outcome": "Scope cut agreed"
	}`

	got := GenerateHeuristicSummary(raw, "bullets")

	want := "## Meeting Summary\n\n" +
		"* **Topic**: Planning\n" +
		"* **Date**: May 2\n" +
		"* **Participants**: Ann, Bob\n\n" +
		"* Budget is tight\n" +
		"* Should we cut scope\n" +
		"* I will do the estimate\n" +
		"\n## Key Decisions\n\n" +
		"* Scope cut agreed\n" +
		"\n## Action Items\n\n" +
		"* Budget is tight! Should we cut scope?\n" +
		"* I will do the estimate.\n"
	assert.Equal(t, want, got)
}

func TestGenerate_BulletedPlainWithoutKeywords(t *testing.T) {
	got := GenerateHeuristicSummary("The weather is nice. Coffee is hot.", "bullet list")

	want := "## Meeting Summary\n\n" +
		"* The weather is nice.\n" +
		"* Coffee is hot.\n" +
		"\n## Key Decisions\n\n" +
		"* No specific decisions identified in the transcript\n" +
		"\n## Action Items\n\n" +
		"* No specific action items identified in the transcript\n"
	assert.Equal(t, want, got)
}

func TestGenerate_BulletedPlainCapsSentences(t *testing.T) {
	got := GenerateHeuristicSummary("One. Two. Three. Four. Five. Six. Seven.", "bullet")

	assert.Contains(t, got, "* Five.\n")
	assert.NotContains(t, got, "* Six.")
}

func TestGenerate_BulletedStructuredWithoutTitle(t *testing.T) {
	got := GenerateHeuristicSummary(`{"discussion":[{"speaker":"A","message":"Hi."}]}`, "bullet")

	assert.Contains(t, got, "* No specific decisions identified in the transcript\n")
	assert.Contains(t, got, "* No specific action items identified in the transcript\n")
}

func TestGenerate_Executive(t *testing.T) {
	short := GenerateHeuristicSummary("a b c", "executive")
	assert.Equal(t, "# Executive Summary\n\n"+
		"This meeting covered a brief discussion related to the project. "+
		"\n\nThe main outcomes were to continue development and address outstanding issues.", short)

	medium := GenerateHeuristicSummary(words(25), "concise")
	assert.Contains(t, medium, "project. w11 w12 w13 w14 w15 w16 w17 w18 w19 w20 w21 w22 w23 w24 w25. \n\n")
	assert.Contains(t, medium, "a brief discussion")

	long := GenerateHeuristicSummary(words(201), "executive")
	assert.Contains(t, long, "several key topics")
	assert.Contains(t, long, "w11 w12")
	assert.Contains(t, long, "w30. ")
	assert.NotContains(t, long, "w31")
}

func TestGenerate_ActionFocusedIsStatic(t *testing.T) {
	want := "# Action Items\n\n" +
		"1. Review the proposed changes\n" +
		"2. Follow up with team members about timeline\n" +
		"3. Prepare documentation for next phase\n" +
		"4. Schedule follow-up meeting\n"

	assert.Equal(t, want, GenerateHeuristicSummary("anything at all", "action items"))
	assert.Equal(t, want, GenerateHeuristicSummary(`{"title":"X"}`, "Action"))
}

func TestGenerate_Default(t *testing.T) {
	got := GenerateHeuristicSummary("one two three", "summarize")
	assert.Equal(t, "# Meeting Summary\n\n"+
		"The meeting covered various topics related to the project. "+
		"\n\nConclusions and next steps were outlined for team members.", got)
	assert.NotContains(t, got, "extensive")
	assert.NotContains(t, got, "Some key points")

	excerpt := GenerateHeuristicSummary(words(60), "")
	assert.Contains(t, excerpt, `Some key points discussed: "w21 w22`)
	assert.Contains(t, excerpt, `w50..." `)
	assert.NotContains(t, excerpt, "w51")
	assert.NotContains(t, excerpt, "extensive")

	extensive := GenerateHeuristicSummary(words(501), "")
	assert.Contains(t, extensive, "The meeting was extensive and covered")
}

func TestGenerate_SingleSpaceSplitCountsEmptyTokens(t *testing.T) {
	// 26 single-space separated tokens, 25 of them empty
	got := GenerateHeuristicSummary("x"+strings.Repeat(" ", 25), "executive")
	assert.Contains(t, got, "related to the project."+strings.Repeat(" ", 16)+". ")
}

func TestGenerate_NeverEmpty(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"{",
		"{}",
		`{"title":null}`,
		`{"discussion":[null, 1, "x", {}]}`,
		"no terminators at all",
		"!!!???...",
	}
	instructions := []string{"", "bullet", "executive", "action", "whatever"}

	for _, in := range inputs {
		for _, instr := range instructions {
			assert.NotEmpty(t, GenerateHeuristicSummary(in, instr), "input %q instruction %q", in, instr)
		}
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	raw := `{"title":"Sync","participants":["A"],"discussion":[{"speaker":"A","message":"We should test. Agreed."}]}`
	for _, instr := range []string{"bullet", "executive", "action", ""} {
		assert.Equal(t, GenerateHeuristicSummary(raw, instr), GenerateHeuristicSummary(raw, instr))
	}
}

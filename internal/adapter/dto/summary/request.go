package summary

// CreateSummaryRequest represents the request to summarize a transcript
type CreateSummaryRequest struct {
	Text   string `json:"text"`
	Prompt string `json:"prompt"`
}

// UpdateSummaryRequest represents the request to edit a summary
type UpdateSummaryRequest struct {
	EditedSummary string `json:"editedSummary"`
}

// ListSummariesRequest represents query parameters for listing summaries
type ListSummariesRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// SendEmailRequest represents the request to email a summary
type SendEmailRequest struct {
	Recipients []string `json:"recipients" validate:"omitempty,max=50,dive,required,email"`
	Subject    string   `json:"subject" validate:"max=255"`
}

package summary

import (
	"time"

	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/external/mailer"
)

// RecipientResponse represents one email delivery of a summary
type RecipientResponse struct {
	Email  string    `json:"email"`
	SentAt time.Time `json:"sentAt"`
}

// SummaryResponse represents a summary in responses
type SummaryResponse struct {
	ID            string              `json:"id"`
	OriginalText  string              `json:"originalText"`
	Prompt        string              `json:"prompt"`
	Summary       string              `json:"summary"`
	EditedSummary string              `json:"editedSummary"`
	SharedWith    []RecipientResponse `json:"sharedWith"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// CreateSummaryResponse is returned after a summary is generated and stored
type CreateSummaryResponse struct {
	Success bool             `json:"success"`
	Data    *SummaryResponse `json:"data"`
	// Source is "model" or "fallback"
	Source string `json:"source"`
}

// SummaryListResponse is one page of summaries
type SummaryListResponse struct {
	Success bool               `json:"success"`
	Count   int                `json:"count"`
	Total   int64              `json:"total"`
	Page    int                `json:"page"`
	Limit   int                `json:"limit"`
	Data    []*SummaryResponse `json:"data"`
}

// SendEmailResponse is returned after a summary was emailed
type SendEmailResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	EmailResult *mailer.SendResult `json:"emailResult"`
}

// ArchivedEmailResponse is one archived copy of a sent email
type ArchivedEmailResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// APIStatusResponse is returned by GET /api
type APIStatusResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	AIStatus string `json:"aiStatus"`
}

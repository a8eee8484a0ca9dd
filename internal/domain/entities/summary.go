package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultEmailSubject is used when a share request carries no subject
const DefaultEmailSubject = "Meeting Summary"

// Recipient records one delivery of a summary by email
type Recipient struct {
	Email  string    `json:"email"`
	SentAt time.Time `json:"sentAt"`
}

// Summary is a stored meeting summary
type Summary struct {
	ID            uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	OriginalText  string                         `gorm:"type:text;not null" json:"originalText"`
	Prompt        string                         `gorm:"type:text;not null" json:"prompt"`
	Summary       string                         `gorm:"type:text;not null" json:"summary"`
	EditedSummary string                         `gorm:"type:text" json:"editedSummary"`
	SharedWith    datatypes.JSONSlice[Recipient] `gorm:"type:jsonb" json:"sharedWith"`
	CreatedAt     time.Time                      `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time                      `json:"updatedAt"`
}

// TableName specifies the table name for Summary
func (Summary) TableName() string {
	return "summaries"
}

// BeforeCreate assigns an id to new records
func (s *Summary) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SharedWith == nil {
		s.SharedWith = datatypes.JSONSlice[Recipient]{}
	}
	return nil
}

// Body returns the text to send: the edited summary when present, the generated one otherwise
func (s *Summary) Body() string {
	if s.EditedSummary != "" {
		return s.EditedSummary
	}
	return s.Summary
}

// RecordShare appends one entry per recipient, all with the same timestamp
func (s *Summary) RecordShare(recipients []string, at time.Time) {
	for _, email := range recipients {
		s.SharedWith = append(s.SharedWith, Recipient{Email: email, SentAt: at})
	}
}

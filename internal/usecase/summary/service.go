package summary

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/external/mailer"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/ai"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	// archiveURLExpiry bounds presigned links to archived emails
	archiveURLExpiry = 15 * time.Minute
)

// Service defines the interface for the summary use case
type Service interface {
	// Create summarizes text and stores the result
	Create(ctx context.Context, text, prompt string) (*CreateOutput, error)

	// List retrieves a page of summaries, newest first
	List(ctx context.Context, page, limit int) (*ListOutput, error)

	// Get retrieves a summary by ID
	Get(ctx context.Context, id uuid.UUID) (*entities.Summary, error)

	// Update replaces the edited summary
	Update(ctx context.Context, id uuid.UUID, editedSummary string) (*entities.Summary, error)

	// Delete removes a summary
	Delete(ctx context.Context, id uuid.UUID) error

	// Share emails a summary and records the recipients
	Share(ctx context.Context, id uuid.UUID, recipients []string, subject string) (*ShareOutput, error)

	// SentEmails lists archived copies of the emails sent for a summary
	SentEmails(ctx context.Context, id uuid.UUID) ([]ArchivedEmail, error)

	// RemoteEnabled reports whether summaries come from a remote model
	RemoteEnabled() bool
}

// CreateOutput is a stored summary and where its text came from
type CreateOutput struct {
	Summary *entities.Summary
	Source  ai.Source
}

// ListOutput is one page of summaries
type ListOutput struct {
	Items []*entities.Summary
	Total int64
	Page  int
	Limit int
}

// ShareOutput is the updated summary and the delivery result
type ShareOutput struct {
	Summary *entities.Summary
	Email   *mailer.SendResult
}

// ArchivedEmail is one archived email with a temporary download link
type ArchivedEmail struct {
	Key string
	URL string
}

// ArchiveReader reads the sent-email archive
type ArchiveReader interface {
	ListFiles(ctx context.Context, prefix string) ([]string, error)
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

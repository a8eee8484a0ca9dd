package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// SummaryRepository defines the interface for summary data access
type SummaryRepository interface {
	// Create stores a new summary
	Create(ctx context.Context, summary *entities.Summary) error

	// FindByID retrieves a summary by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Summary, error)

	// List retrieves summaries newest first, with the total count
	List(ctx context.Context, limit, offset int) ([]*entities.Summary, int64, error)

	// Update saves an existing summary
	Update(ctx context.Context, summary *entities.Summary) error

	// Delete removes a summary
	Delete(ctx context.Context, id uuid.UUID) error
}

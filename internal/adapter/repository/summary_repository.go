package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
)

// summaryRepository implements the SummaryRepository interface
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(db *gorm.DB) repositories.SummaryRepository {
	return &summaryRepository{db: db}
}

// Create stores a new summary
func (r *summaryRepository) Create(ctx context.Context, summary *entities.Summary) error {
	return r.db.WithContext(ctx).Create(summary).Error
}

// FindByID retrieves a summary by its ID
func (r *summaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Summary, error) {
	var summary entities.Summary
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&summary).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrSummaryNotFound
		}
		return nil, err
	}
	return &summary, nil
}

// List retrieves summaries newest first, with the total count
func (r *summaryRepository) List(ctx context.Context, limit, offset int) ([]*entities.Summary, int64, error) {
	var summaries []*entities.Summary
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Summary{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&summaries).Error
	return summaries, total, err
}

// Update saves an existing summary
func (r *summaryRepository) Update(ctx context.Context, summary *entities.Summary) error {
	result := r.db.WithContext(ctx).
		Model(summary).
		Select("*").
		Omit("created_at").
		Updates(summary)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrSummaryNotFound
	}
	return nil
}

// Delete removes a summary
func (r *summaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&entities.Summary{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrSummaryNotFound
	}
	return nil
}

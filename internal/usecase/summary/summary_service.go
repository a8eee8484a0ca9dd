package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/external/mailer"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
)

// SummaryService handles summary business logic
type SummaryService struct {
	repo       repositories.SummaryRepository
	summarizer ai.Summarizer
	sender     mailer.Sender
	cache      cache.SummaryCache
	archive    ArchiveReader
	logger     *zap.Logger
	now        func() time.Time
}

// Option configures optional collaborators of SummaryService
type Option func(*SummaryService)

// WithCache enables read-through caching of summaries
func WithCache(c cache.SummaryCache) Option {
	return func(s *SummaryService) { s.cache = c }
}

// WithArchive enables listing of archived sent emails
func WithArchive(a ArchiveReader) Option {
	return func(s *SummaryService) { s.archive = a }
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	repo repositories.SummaryRepository,
	summarizer ai.Summarizer,
	sender mailer.Sender,
	logger *zap.Logger,
	opts ...Option,
) *SummaryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SummaryService{
		repo:       repo,
		summarizer: summarizer,
		sender:     sender,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Service = (*SummaryService)(nil)

// RemoteEnabled reports whether summaries come from a remote model
func (s *SummaryService) RemoteEnabled() bool {
	return s.summarizer.RemoteEnabled()
}

// Create summarizes text and stores the result
func (s *SummaryService) Create(ctx context.Context, text, prompt string) (*CreateOutput, error) {
	if text == "" || prompt == "" {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, usecaseErrors.ErrTextAndPromptRequired)
	}

	result := s.summarizer.Summarize(ctx, text, prompt)

	summary := &entities.Summary{
		OriginalText:  text,
		Prompt:        prompt,
		Summary:       result.Summary,
		EditedSummary: result.Summary,
	}
	if err := s.repo.Create(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to create summary: %w", err)
	}

	s.logger.Info("✅ Summary created",
		zap.String("summary_id", summary.ID.String()),
		zap.String("source", string(result.Source)),
	)
	return &CreateOutput{Summary: summary, Source: result.Source}, nil
}

// List retrieves a page of summaries, newest first. Page and limit below 1 fall back to defaults.
func (s *SummaryService) List(ctx context.Context, page, limit int) (*ListOutput, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	items, total, err := s.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	return &ListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// Get retrieves a summary by ID, consulting the cache first
func (s *SummaryService) Get(ctx context.Context, id uuid.UUID) (*entities.Summary, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn("⚠️ Summary cache read failed", zap.String("summary_id", id.String()), zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	summary, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, summary); err != nil {
			s.logger.Warn("⚠️ Summary cache write failed", zap.String("summary_id", id.String()), zap.Error(err))
		}
	}
	return summary, nil
}

// Update replaces the edited summary
func (s *SummaryService) Update(ctx context.Context, id uuid.UUID, editedSummary string) (*entities.Summary, error) {
	if editedSummary == "" {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, usecaseErrors.ErrEditedSummaryRequired)
	}

	summary, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	summary.EditedSummary = editedSummary
	summary.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to update summary: %w", err)
	}
	s.invalidate(ctx, id)

	return summary, nil
}

// Delete removes a summary
func (s *SummaryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entities.ErrSummaryNotFound) {
			return fmt.Errorf("%w: %w", usecaseErrors.ErrNotFound, err)
		}
		return fmt.Errorf("failed to delete summary: %w", err)
	}
	s.invalidate(ctx, id)

	s.logger.Info("🗑️ Summary deleted", zap.String("summary_id", id.String()))
	return nil
}

// Share emails a summary and records the recipients. Nothing is recorded when delivery fails.
func (s *SummaryService) Share(ctx context.Context, id uuid.UUID, recipients []string, subject string) (*ShareOutput, error) {
	if len(recipients) == 0 {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, usecaseErrors.ErrRecipientsRequired)
	}
	if subject == "" {
		subject = entities.DefaultEmailSubject
	}

	summary, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.sender.SendSummary(ctx, summary.ID, recipients, subject, summary.Body())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrEmailFailed, err)
	}

	summary.RecordShare(recipients, s.now())
	if err := s.repo.Update(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to record recipients: %w", err)
	}
	s.invalidate(ctx, id)

	return &ShareOutput{Summary: summary, Email: result}, nil
}

// SentEmails lists archived copies of the emails sent for a summary
func (s *SummaryService) SentEmails(ctx context.Context, id uuid.UUID) ([]ArchivedEmail, error) {
	if s.archive == nil {
		return nil, usecaseErrors.ErrArchiveDisabled
	}

	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	keys, err := s.archive.ListFiles(ctx, fmt.Sprintf("emails/%s/", id))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrArchiveFailed, err)
	}

	emails := make([]ArchivedEmail, 0, len(keys))
	for _, key := range keys {
		url, err := s.archive.GetFileURL(ctx, key, archiveURLExpiry)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrArchiveFailed, err)
		}
		emails = append(emails, ArchivedEmail{Key: key, URL: url})
	}
	return emails, nil
}

func (s *SummaryService) find(ctx context.Context, id uuid.UUID) (*entities.Summary, error) {
	summary, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrSummaryNotFound) {
			return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrNotFound, err)
		}
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return summary, nil
}

func (s *SummaryService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Warn("⚠️ Summary cache invalidation failed", zap.String("summary_id", id.String()), zap.Error(err))
	}
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// SummaryCache is a read-through cache of stored summaries
type SummaryCache interface {
	// Get returns the cached summary; ok is false on a miss
	Get(ctx context.Context, id uuid.UUID) (summary *entities.Summary, ok bool, err error)
	Set(ctx context.Context, summary *entities.Summary) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func summaryKey(id uuid.UUID) string {
	return fmt.Sprintf("summary:%s", id)
}

func encodeSummary(s *entities.Summary) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode summary: %w", err)
	}
	return string(b), nil
}

func decodeSummary(raw string) (*entities.Summary, error) {
	var s entities.Summary
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("failed to decode cached summary: %w", err)
	}
	return &s, nil
}

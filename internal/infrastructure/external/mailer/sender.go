package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Archiver keeps a copy of every sent message
type Archiver interface {
	Archive(ctx context.Context, key string, raw []byte) error
}

// SendResult describes a delivered summary email
type SendResult struct {
	MessageID  string   `json:"messageId"`
	Accepted   []string `json:"accepted"`
	ArchiveKey string   `json:"archiveKey,omitempty"`
}

// Sender emails meeting summaries
type Sender interface {
	SendSummary(ctx context.Context, summaryID uuid.UUID, recipients []string, subject, body string) (*SendResult, error)
}

type sender struct {
	transport Transport
	archiver  Archiver
	from      string
	logger    *zap.Logger
	now       func() time.Time
}

// NewSender creates a summary sender. archiver may be nil.
func NewSender(transport Transport, archiver Archiver, from string, logger *zap.Logger) Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &sender{
		transport: transport,
		archiver:  archiver,
		from:      from,
		logger:    logger,
		now:       time.Now,
	}
}

// ArchiveKey is the object key of an archived summary email
func ArchiveKey(summaryID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("emails/%s/%d.eml", summaryID, at.UnixNano())
}

func (s *sender) SendSummary(ctx context.Context, summaryID uuid.UUID, recipients []string, subject, body string) (*SendResult, error) {
	now := s.now()

	raw, messageID, err := Compose(Message{
		From:    s.from,
		To:      recipients,
		Subject: subject,
		Body:    body,
		Date:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("compose message: %w", err)
	}

	if err := s.transport.Send(ctx, bareAddress(s.from), recipients, raw); err != nil {
		s.logger.Error("❌ Failed to send summary email",
			zap.String("summary_id", summaryID.String()),
			zap.Int("recipients", len(recipients)),
			zap.Error(err),
		)
		return nil, err
	}

	result := &SendResult{
		MessageID: messageID,
		Accepted:  append([]string(nil), recipients...),
	}

	if s.archiver != nil {
		key := ArchiveKey(summaryID, now)
		if err := s.archiver.Archive(ctx, key, raw); err != nil {
			s.logger.Warn("⚠️ Failed to archive sent email",
				zap.String("summary_id", summaryID.String()),
				zap.String("key", key),
				zap.Error(err),
			)
		} else {
			result.ArchiveKey = key
		}
	}

	s.logger.Info("✅ Summary email sent",
		zap.String("summary_id", summaryID.String()),
		zap.String("message_id", messageID),
		zap.Int("recipients", len(recipients)),
	)
	return result, nil
}

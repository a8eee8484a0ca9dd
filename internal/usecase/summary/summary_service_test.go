package summary

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/external/mailer"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
)

type memoryRepo struct {
	mu        sync.Mutex
	items     map[uuid.UUID]entities.Summary
	clock     time.Time
	findCalls int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		items: make(map[uuid.UUID]entities.Summary),
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *memoryRepo) Create(_ context.Context, s *entities.Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := s.BeforeCreate(nil); err != nil {
		return err
	}
	r.clock = r.clock.Add(time.Minute)
	s.CreatedAt, s.UpdatedAt = r.clock, r.clock
	r.items[s.ID] = *s
	return nil
}

func (r *memoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	s, ok := r.items[id]
	if !ok {
		return nil, entities.ErrSummaryNotFound
	}
	s.SharedWith = append([]entities.Recipient(nil), s.SharedWith...)
	return &s, nil
}

func (r *memoryRepo) List(_ context.Context, limit, offset int) ([]*entities.Summary, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entities.Summary, 0, len(r.items))
	for _, s := range r.items {
		s := s
		all = append(all, &s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	if offset >= len(all) {
		return []*entities.Summary{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *memoryRepo) Update(_ context.Context, s *entities.Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[s.ID]; !ok {
		return entities.ErrSummaryNotFound
	}
	r.items[s.ID] = *s
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return entities.ErrSummaryNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeSender struct {
	err        error
	recipients []string
	subject    string
	body       string
}

func (f *fakeSender) SendSummary(_ context.Context, _ uuid.UUID, recipients []string, subject, body string) (*mailer.SendResult, error) {
	f.recipients, f.subject, f.body = recipients, subject, body
	if f.err != nil {
		return nil, f.err
	}
	return &mailer.SendResult{MessageID: "<id@example.com>", Accepted: recipients}, nil
}

type fakeArchive struct {
	keys []string
	err  error
}

func (f *fakeArchive) ListFiles(_ context.Context, _ string) ([]string, error) {
	return f.keys, f.err
}

func (f *fakeArchive) GetFileURL(_ context.Context, objectName string, _ time.Duration) (string, error) {
	return "https://files.example.com/" + objectName, nil
}

func newTestService(t *testing.T, opts ...Option) (*SummaryService, *memoryRepo, *fakeSender) {
	t.Helper()
	repo := newMemoryRepo()
	sender := &fakeSender{}
	svc := NewSummaryService(repo, ai.NewSummarizer(nil, nil), sender, nil, opts...)
	return svc, repo, sender
}

func TestCreate(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	out, err := svc.Create(ctx, "one two three", "summarize")
	require.NoError(t, err)
	assert.Equal(t, ai.SourceFallback, out.Source)
	assert.Equal(t, out.Summary.Summary, out.Summary.EditedSummary)
	assert.Equal(t, ai.GenerateHeuristicSummary("one two three", "summarize"), out.Summary.Summary)
	assert.NotEqual(t, uuid.Nil, out.Summary.ID)
	assert.False(t, svc.RemoteEnabled())

	for _, tc := range []struct{ text, prompt string }{{"", "p"}, {"t", ""}, {"", ""}} {
		_, err := svc.Create(ctx, tc.text, tc.prompt)
		assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
		assert.ErrorIs(t, err, usecaseErrors.ErrTextAndPromptRequired)
	}
}

func TestList(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for _, text := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, text, "p")
		require.NoError(t, err)
	}

	out, err := svc.List(ctx, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, out.Page)
	assert.Equal(t, DefaultLimit, out.Limit)
	assert.EqualValues(t, 3, out.Total)
	require.Len(t, out.Items, 3)
	assert.Equal(t, "c", out.Items[0].OriginalText)

	out, err = svc.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "a", out.Items[0].OriginalText)

	out, err = svc.List(ctx, 5, 2)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.EqualValues(t, 3, out.Total)
}

func TestGet_UsesCache(t *testing.T) {
	store := cache.NewMemoryStore(time.Hour)
	defer store.Close()
	svc, repo, _ := newTestService(t, WithCache(cache.NewMemorySummaryCache(store, time.Minute)))
	ctx := context.Background()

	created, err := svc.Create(ctx, "text", "p")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := svc.Get(ctx, created.Summary.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Summary.ID, got.ID)
	}
	assert.Equal(t, 1, repo.findCalls)

	_, err = svc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrNotFound)
	assert.ErrorIs(t, err, entities.ErrSummaryNotFound)
}

func TestUpdate(t *testing.T) {
	store := cache.NewMemoryStore(time.Hour)
	defer store.Close()
	svc, _, _ := newTestService(t, WithCache(cache.NewMemorySummaryCache(store, time.Minute)))
	ctx := context.Background()
	fixed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	created, err := svc.Create(ctx, "text", "p")
	require.NoError(t, err)
	_, err = svc.Get(ctx, created.Summary.ID)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.Summary.ID, "better")
	require.NoError(t, err)
	assert.Equal(t, "better", updated.EditedSummary)
	assert.Equal(t, created.Summary.Summary, updated.Summary)
	assert.Equal(t, fixed, updated.UpdatedAt)

	// the cached copy was invalidated
	got, err := svc.Get(ctx, created.Summary.ID)
	require.NoError(t, err)
	assert.Equal(t, "better", got.EditedSummary)

	_, err = svc.Update(ctx, created.Summary.ID, "")
	assert.ErrorIs(t, err, usecaseErrors.ErrEditedSummaryRequired)

	_, err = svc.Update(ctx, uuid.New(), "x")
	assert.ErrorIs(t, err, usecaseErrors.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "text", "p")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.Summary.ID))
	_, err = svc.Get(ctx, created.Summary.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.Summary.ID), usecaseErrors.ErrNotFound)
}

func TestShare(t *testing.T) {
	svc, repo, sender := newTestService(t)
	ctx := context.Background()
	sentAt := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return sentAt }

	created, err := svc.Create(ctx, "text", "p")
	require.NoError(t, err)

	out, err := svc.Share(ctx, created.Summary.ID, []string{"a@example.com", "b@example.com"}, "")
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultEmailSubject, sender.subject)
	assert.Equal(t, created.Summary.EditedSummary, sender.body)
	assert.Equal(t, "<id@example.com>", out.Email.MessageID)

	stored, err := repo.FindByID(ctx, created.Summary.ID)
	require.NoError(t, err)
	require.Len(t, stored.SharedWith, 2)
	assert.Equal(t, "a@example.com", stored.SharedWith[0].Email)
	assert.Equal(t, sentAt, stored.SharedWith[1].SentAt)

	_, err = svc.Share(ctx, created.Summary.ID, []string{"c@example.com"}, "Custom")
	require.NoError(t, err)
	assert.Equal(t, "Custom", sender.subject)
	stored, err = repo.FindByID(ctx, created.Summary.ID)
	require.NoError(t, err)
	assert.Len(t, stored.SharedWith, 3)
}

func TestShare_BodyFallsBackToGeneratedSummary(t *testing.T) {
	svc, repo, sender := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "text", "p")
	require.NoError(t, err)
	s := repo.items[created.Summary.ID]
	s.EditedSummary = ""
	repo.items[s.ID] = s

	_, err = svc.Share(ctx, s.ID, []string{"a@example.com"}, "x")
	require.NoError(t, err)
	assert.Equal(t, s.Summary, sender.body)
}

func TestShare_Errors(t *testing.T) {
	svc, repo, sender := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "text", "p")
	require.NoError(t, err)

	_, err = svc.Share(ctx, created.Summary.ID, nil, "s")
	assert.ErrorIs(t, err, usecaseErrors.ErrRecipientsRequired)

	_, err = svc.Share(ctx, uuid.New(), []string{"a@example.com"}, "s")
	assert.ErrorIs(t, err, usecaseErrors.ErrNotFound)

	sender.err = errors.New("dial SMTP: refused")
	_, err = svc.Share(ctx, created.Summary.ID, []string{"a@example.com"}, "s")
	assert.ErrorIs(t, err, usecaseErrors.ErrEmailFailed)

	stored, err := repo.FindByID(ctx, created.Summary.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.SharedWith)
}

func TestSentEmails(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SentEmails(ctx, uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrArchiveDisabled)

	created, err := svc.Create(ctx, "text", "p")
	require.NoError(t, err)
	key := mailer.ArchiveKey(created.Summary.ID, time.Unix(1, 0))
	svc.archive = &fakeArchive{keys: []string{key}}

	emails, err := svc.SentEmails(ctx, created.Summary.ID)
	require.NoError(t, err)
	require.Len(t, emails, 1)
	assert.Equal(t, key, emails[0].Key)
	assert.Equal(t, "https://files.example.com/"+key, emails[0].URL)

	_, err = svc.SentEmails(ctx, uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrNotFound)

	svc.archive = &fakeArchive{err: errors.New("access denied")}
	_, err = svc.SentEmails(ctx, created.Summary.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrArchiveFailed)
}

package resource_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/taibuivan/backlist/internal/core/resource"
	"github.com/taibuivan/backlist/internal/platform/apperr"
	"github.com/taibuivan/backlist/internal/platform/constants"
	"github.com/taibuivan/backlist/internal/platform/validate"
	"github.com/taibuivan/backlist/pkg/pointer"
)

// # Test Resource

type widget struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Slug         *string    `json:"slug"`
	Note         *string    `json:"note"`
	Visible      bool       `json:"visible"`
	DisplayOrder *int       `json:"display_order"`
	DeletedAt    *time.Time `json:"deleted_at"`
}

func (w *widget) EntityID() string { return w.ID }
func (w *widget) FlagValue() bool  { return w.Visible }

type widgetPayload struct {
	Name    string  `json:"name"`
	Slug    *string `json:"slug"`
	Note    *string `json:"note"`
	Visible *bool   `json:"visible"`
}

func (p widgetPayload) RequiredValue() string { return p.Name }
func (p widgetPayload) FlagInput() *bool      { return p.Visible }

func (p widgetPayload) Normalize() widgetPayload {
	p.Name = strings.TrimSpace(p.Name)
	p.Slug = pointer.NonBlank(p.Slug)
	p.Note = pointer.NonBlank(p.Note)
	return p
}

func (p widgetPayload) Validate(validator *validate.Validator) {
	if p.Note != nil {
		validator.MaxLen("note", *p.Note, 20)
	}
}

// # In-Memory Repository

// memoryRepository mirrors the lifecycle semantics of the Postgres repository.
type memoryRepository struct {
	mu        sync.Mutex
	records   map[string]*widget
	clock     time.Time
	failWith  error
	lastQuery string
	inserts   int
}

var _ resource.Repository[*widget, widgetPayload] = (*memoryRepository)(nil)

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		records: make(map[string]*widget),
		clock:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (repository *memoryRepository) tick() time.Time {
	repository.clock = repository.clock.Add(time.Second)
	return repository.clock
}

func clone(w *widget) *widget {
	copied := *w
	return &copied
}

func (repository *memoryRepository) notFound() error {
	return apperr.NotFound("Widget")
}

func (repository *memoryRepository) ListActive(_ context.Context, query string) ([]*widget, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.failWith != nil {
		return nil, repository.failWith
	}
	repository.lastQuery = query

	records := make([]*widget, 0)
	for _, record := range repository.records {
		if record.DeletedAt != nil {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(record.Name), strings.ToLower(query)) {
			continue
		}
		records = append(records, clone(record))
	}

	sort.Slice(records, func(i, j int) bool {
		left, right := records[i].DisplayOrder, records[j].DisplayOrder
		switch {
		case left != nil && right != nil && *left != *right:
			return *left < *right
		case left != nil && right == nil:
			return true
		case left == nil && right != nil:
			return false
		}
		if records[i].Name != records[j].Name {
			return records[i].Name < records[j].Name
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

func (repository *memoryRepository) ListTrashed(_ context.Context) ([]*widget, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.failWith != nil {
		return nil, repository.failWith
	}

	records := make([]*widget, 0)
	for _, record := range repository.records {
		if record.DeletedAt != nil {
			records = append(records, clone(record))
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].DeletedAt.After(*records[j].DeletedAt) })
	return records, nil
}

func (repository *memoryRepository) Get(_ context.Context, id string) (*widget, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	record, ok := repository.records[id]
	if !ok {
		return nil, repository.notFound()
	}
	return clone(record), nil
}

func (repository *memoryRepository) Insert(_ context.Context, id string, payload widgetPayload) (*widget, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.failWith != nil {
		return nil, repository.failWith
	}

	record := &widget{
		ID:      id,
		Name:    payload.Name,
		Slug:    payload.Slug,
		Note:    payload.Note,
		Visible: pointer.Fallback(payload.Visible, false),
	}
	repository.records[id] = record
	repository.inserts++
	return clone(record), nil
}

func (repository *memoryRepository) Update(_ context.Context, id string, payload widgetPayload) (*widget, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	record, ok := repository.records[id]
	if !ok || record.DeletedAt != nil {
		return nil, repository.notFound()
	}
	if payload.Name != "" {
		record.Name = payload.Name
	}
	if payload.Visible != nil {
		record.Visible = *payload.Visible
	}
	record.Slug = payload.Slug
	record.Note = payload.Note
	return clone(record), nil
}

func (repository *memoryRepository) Duplicate(_ context.Context, sourceID, newID string) (*widget, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	source, ok := repository.records[sourceID]
	if !ok {
		return nil, repository.notFound()
	}

	copied := &widget{
		ID:   newID,
		Name: source.Name + constants.CopyNameSuffix,
		Note: source.Note,
	}
	if source.Slug != nil {
		copied.Slug = pointer.To(*source.Slug + constants.CopySlugSuffix)
	}
	repository.records[newID] = copied
	return clone(copied), nil
}

func (repository *memoryRepository) SoftDelete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	record, ok := repository.records[id]
	if !ok {
		return repository.notFound()
	}
	if record.DeletedAt == nil {
		record.DeletedAt = pointer.To(repository.tick())
	}
	return nil
}

func (repository *memoryRepository) Restore(_ context.Context, id string) (*widget, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	record, ok := repository.records[id]
	if !ok {
		return nil, repository.notFound()
	}
	record.DeletedAt = nil
	return clone(record), nil
}

func (repository *memoryRepository) SetFlag(_ context.Context, id string, value bool) (*widget, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	record, ok := repository.records[id]
	if !ok {
		return nil, repository.notFound()
	}
	record.Visible = value
	return clone(record), nil
}

func (repository *memoryRepository) SetDisplayOrder(_ context.Context, id string, position int) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.failWith != nil {
		return repository.failWith
	}

	if record, ok := repository.records[id]; ok {
		record.DisplayOrder = pointer.To(position)
	}
	return nil
}

func (repository *memoryRepository) HardDelete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.records[id]; !ok {
		return repository.notFound()
	}
	delete(repository.records, id)
	return nil
}

// # Invalidator

type countingInvalidator struct {
	calls int
	err   error
}

func (invalidator *countingInvalidator) Invalidate(context.Context) error {
	invalidator.calls++
	return invalidator.err
}

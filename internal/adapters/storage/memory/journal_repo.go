package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"

	"animal-zoo/internal/domain/journal"
)

type journalRepo struct {
	mu      sync.RWMutex
	entries []journal.Entry
	ids     map[string]struct{}
}

func NewJournalRepo() journal.Repository {
	return &journalRepo{
		ids: make(map[string]struct{}),
	}
}

func (r *journalRepo) Create(ctx context.Context, e journal.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("entry id required")
	}
	if _, exists := r.ids[e.ID]; exists {
		return errors.New("entry already exists")
	}

	r.ids[e.ID] = struct{}{}
	r.entries = append(r.entries, e)
	return nil
}

func (r *journalRepo) ListByResident(ctx context.Context, residentID string, filter journal.ListFilter) ([]journal.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = journal.DefaultLimit
	}

	out := make([]journal.Entry, 0)
	for _, e := range r.entries {
		if e.ResidentID != residentID {
			continue
		}
		if len(filter.Actions) > 0 && !slices.Contains(filter.Actions, e.Action) {
			continue
		}
		out = append(out, e)
	}

	// Más reciente primero. Stable: con el mismo RecordedAt, el último
	// insertado va antes.
	slices.Reverse(out)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

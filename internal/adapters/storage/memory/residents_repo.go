package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"animal-zoo/internal/domain/animals"
	"animal-zoo/internal/domain/zoo"
)

var (
	ErrNotFound = zoo.ErrNotFound
)

// residentRecord guarda una foto del animal, no el puntero: lo que el
// caller haga con el animal devuelto no toca el repo hasta Update.
type residentRecord struct {
	id         string
	state      animals.State
	admittedAt time.Time
	updatedAt  time.Time
}

type residentRepo struct {
	mu    sync.RWMutex
	byID  map[string]residentRecord
	order []string // orden de admisión
}

func NewResidentRepo() zoo.Repository {
	return &residentRepo{
		byID: make(map[string]residentRecord),
	}
}

func (r *residentRepo) Create(ctx context.Context, res zoo.Resident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(res.ID) == "" || res.Animal == nil {
		return errors.New("resident id and animal required")
	}
	if _, exists := r.byID[res.ID]; exists {
		return errors.New("resident already exists")
	}
	r.byID[res.ID] = toRecord(res)
	r.order = append(r.order, res.ID)
	return nil
}

func (r *residentRepo) Update(ctx context.Context, res zoo.Resident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(res.ID) == "" || res.Animal == nil {
		return errors.New("resident id and animal required")
	}
	if _, exists := r.byID[res.ID]; !exists {
		return ErrNotFound
	}
	r.byID[res.ID] = toRecord(res)
	return nil
}

func (r *residentRepo) GetByID(ctx context.Context, id string) (zoo.Resident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return zoo.Resident{}, ErrNotFound
	}
	return fromRecord(rec)
}

func (r *residentRepo) List(ctx context.Context) ([]zoo.Resident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]zoo.Resident, 0, len(r.order))
	for _, id := range r.order {
		res, err := fromRecord(r.byID[id])
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func toRecord(res zoo.Resident) residentRecord {
	return residentRecord{
		id:         res.ID,
		state:      animals.Snapshot(res.Animal),
		admittedAt: res.AdmittedAt,
		updatedAt:  res.UpdatedAt,
	}
}

func fromRecord(rec residentRecord) (zoo.Resident, error) {
	a, err := animals.Restore(rec.state)
	if err != nil {
		return zoo.Resident{}, err
	}
	return zoo.Resident{
		ID:         rec.id,
		Animal:     a,
		AdmittedAt: rec.admittedAt,
		UpdatedAt:  rec.updatedAt,
	}, nil
}

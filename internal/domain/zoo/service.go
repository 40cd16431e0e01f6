package zoo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"animal-zoo/internal/domain/animals"
	"animal-zoo/internal/platform/logger"
	"animal-zoo/internal/platform/metrics"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrUnsupportedAction = errors.New("unsupported action")
)

type Service struct {
	repo    Repository
	journal Recorder
	metrics *metrics.Metrics
	log     logger.Logger
	now     func() time.Time

	// serializa read-modify-write de Perform
	mu sync.Mutex
}

type Option func(*Service)

func WithJournal(r Recorder) Option {
	return func(s *Service) { s.journal = r }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		log:  logger.NewNop(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Admit crea el animal con la fábrica y lo registra.
// Los errores de la fábrica se devuelven tal cual.
func (s *Service) Admit(ctx context.Context, kind string, args ...any) (Resident, error) {
	a, err := animals.Create(kind, args...)
	if err != nil {
		s.metrics.Rejected(rejectReason(err))
		s.log.Warn("admission rejected", map[string]any{
			"type": kind,
			"err":  err,
		})
		return Resident{}, err
	}
	return s.admit(ctx, a)
}

// AdmitAnimal registra un animal ya construido (roster, seeds).
func (s *Service) AdmitAnimal(ctx context.Context, a animals.Animal) (Resident, error) {
	if a == nil {
		return Resident{}, ErrInvalidInput
	}
	return s.admit(ctx, a)
}

// Seed admite list solo si el registro está vacío. Con Postgres el
// registro sobrevive a los reinicios y el roster no se vuelve a admitir.
// Devuelve cuántos animales admitió.
func (s *Service) Seed(ctx context.Context, list []animals.Animal) (int, error) {
	if len(list) == 0 {
		return 0, nil
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		s.log.Info("seed skipped: registry not empty", map[string]any{
			"residents": len(existing),
		})
		return 0, nil
	}

	for i, a := range list {
		if _, err := s.AdmitAnimal(ctx, a); err != nil {
			return i, err
		}
	}
	return len(list), nil
}

func (s *Service) admit(ctx context.Context, a animals.Animal) (Resident, error) {
	now := s.now()
	r := Resident{
		ID:         uuid.NewString(),
		Animal:     a,
		AdmittedAt: now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return Resident{}, err
	}

	s.metrics.Admitted(string(a.Kind()))
	s.record(ctx, r.ID, ActionAdmitted, a.String())
	s.log.Info("resident admitted", map[string]any{
		"resident_id": r.ID,
		"kind":        string(a.Kind()),
		"name":        a.Name(),
	})
	return r, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Resident, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Resident{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve los residentes por orden de admisión.
func (s *Service) List(ctx context.Context) ([]Resident, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].AdmittedAt.Before(items[j].AdmittedAt)
	})
	return items, nil
}

// Census cuenta residentes por variante. Todas las variantes aparecen,
// aunque sea con 0.
func (s *Service) Census(ctx context.Context) (map[animals.Kind]int, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]animals.Animal, 0, len(items))
	for _, r := range items {
		list = append(list, r.Animal)
	}
	g := animals.GroupByKind(list)

	return map[animals.Kind]int{
		animals.KindDog:  len(g.Dogs),
		animals.KindCat:  len(g.Cats),
		animals.KindBird: len(g.Birds),
	}, nil
}

// Concert hace sonar a todos los residentes en orden de admisión.
func (s *Service) Concert(ctx context.Context) ([]string, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, r := range items {
		out = append(out, r.Animal.MakeSound())
	}
	return out, nil
}

// Perform ejecuta cmd sobre el residente id. Si la acción modifica al
// animal, persiste el nuevo estado.
func (s *Service) Perform(ctx context.Context, id string, cmd Command) (Outcome, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(string(cmd.Action)) == "" {
		return Outcome{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Outcome{}, err
	}

	msg, mutated, err := apply(r.Animal, cmd)
	if err != nil {
		return Outcome{}, err
	}

	if mutated {
		r.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, r); err != nil {
			return Outcome{}, err
		}
	}

	s.metrics.Action(string(r.Animal.Kind()), string(cmd.Action))
	s.record(ctx, r.ID, string(cmd.Action), journalMessage(r.Animal, cmd, msg))

	return Outcome{Message: msg, Resident: r}, nil
}

func (s *Service) record(ctx context.Context, residentID, action, message string) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(ctx, residentID, action, message); err != nil {
		// el diario es best-effort: no tumba la operación
		s.log.Warn("journal record failed", map[string]any{
			"resident_id": residentID,
			"action":      action,
			"err":         err,
		})
	}
}

func journalMessage(a animals.Animal, cmd Command, msg string) string {
	if msg != "" {
		return msg
	}
	if cmd.Action == ActionSetFlyAbility && cmd.CanFly != nil {
		return fmt.Sprintf("%s can_fly=%t", a.Name(), *cmd.CanFly)
	}
	return string(cmd.Action)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, animals.ErrUnknownKind):
		return "unknown_kind"
	case errors.Is(err, animals.ErrInvalidArgs):
		return "invalid_args"
	default:
		return "other"
	}
}

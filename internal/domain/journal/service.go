package journal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultLimit = 50

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Record agrega una entrada al diario del residente.
func (s *Service) Record(ctx context.Context, residentID, action, message string) error {
	residentID = strings.TrimSpace(residentID)
	action = strings.TrimSpace(action)
	if residentID == "" || action == "" {
		return ErrInvalidInput
	}

	e := Entry{
		ID:         uuid.NewString(),
		ResidentID: residentID,
		Action:     action,
		Message:    message,
		RecordedAt: s.now(),
	}
	return s.repo.Create(ctx, e)
}

// ListByResident devuelve las entradas más recientes primero.
func (s *Service) ListByResident(ctx context.Context, residentID string, filter ListFilter) ([]Entry, error) {
	residentID = strings.TrimSpace(residentID)
	if residentID == "" {
		return nil, ErrInvalidInput
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	return s.repo.ListByResident(ctx, residentID, filter)
}

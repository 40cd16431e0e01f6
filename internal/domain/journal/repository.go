package journal

import "context"

type Repository interface {
	Create(ctx context.Context, e Entry) error
	ListByResident(ctx context.Context, residentID string, filter ListFilter) ([]Entry, error)
}

type ListFilter struct {
	Actions []string
	Limit   int
}

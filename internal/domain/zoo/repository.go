package zoo

import "context"

// Repository persiste residentes. Las implementaciones devuelven
// ErrNotFound cuando el id no existe.
type Repository interface {
	Create(ctx context.Context, r Resident) error
	Update(ctx context.Context, r Resident) error
	GetByID(ctx context.Context, id string) (Resident, error)
	List(ctx context.Context) ([]Resident, error)
}

// Recorder recibe el resultado de cada operación sobre un residente.
// journal.Service lo implementa; se define acá para no importar journal.
type Recorder interface {
	Record(ctx context.Context, residentID, action, message string) error
}

package patient

import (
	"context"
	"errors"
)

// ErrNotFound is returned for lookups of unknown patient ids.
var ErrNotFound = errors.New("patient not found")

// Repository is the persistence seam for patient records. The portal ships
// an in-memory implementation; a database-backed one would satisfy the same
// contract.
type Repository interface {
	List(ctx context.Context) ([]*Patient, error)
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id string) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id string) error
}

package presentation

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository,TransactionSubmitter

import (
	"context"
	"time"
)

// Repository defines presentation persistence. Getters return nil, nil when
// nothing matches.
type Repository interface {
	GetByStaticID(ctx context.Context, staticID string) (*Presentation, error)
	GetByReference(ctx context.Context, reference string) (*Presentation, error)
	GetByContractAddress(ctx context.Context, address string) (*Presentation, error)
	ListByLCReference(ctx context.Context, lcReference string) ([]*Presentation, error)
	ListStaleDestination(ctx context.Context, olderThan time.Time, limit int) ([]*Presentation, error)
	Save(ctx context.Context, p *Presentation) error
	Delete(ctx context.Context, staticID string) error
	RecordFieldUpdate(ctx context.Context, update *FieldUpdate) error
}

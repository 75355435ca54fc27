package lc

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import "context"

// Repository loads LC records. Getters return nil, nil when nothing matches.
type Repository interface {
	GetByReference(ctx context.Context, reference string) (*LC, error)
	GetByContractAddress(ctx context.Context, address string) (*LC, error)
	Save(ctx context.Context, l *LC) error
}

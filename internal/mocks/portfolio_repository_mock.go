package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

// PortfolioRepositoryMock is a testify/mock for mongorepo.PortfolioRepository.
type PortfolioRepositoryMock struct{ mock.Mock }

func (m *PortfolioRepositoryMock) Latest(ctx context.Context) (bson.M, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(bson.M), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PortfolioRepositoryMock) Probe(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

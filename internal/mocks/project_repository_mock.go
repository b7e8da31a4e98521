package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yoockh/folio/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectRepositoryMock is a testify/mock for mongorepo.ProjectRepository.
type ProjectRepositoryMock struct{ mock.Mock }

func (m *ProjectRepositoryMock) FindAll(ctx context.Context) ([]bson.M, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]bson.M), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepositoryMock) Insert(ctx context.Context, p *models.ProjectDocument) (primitive.ObjectID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *ProjectRepositoryMock) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return m.Called(ctx, id, set).Error(0)
}

func (m *ProjectRepositoryMock) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

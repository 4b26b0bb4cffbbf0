// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inspectwise/inspection-service/internal/domain/model"
)

type MockInspectionRepositoryInterface struct {
	mock.Mock
}

func (m *MockInspectionRepositoryInterface) Create(ctx context.Context, insp *model.Inspection) error {
	args := m.Called(ctx, insp)
	return args.Error(0)
}

func (m *MockInspectionRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Inspection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inspection), args.Error(1)
}

func (m *MockInspectionRepositoryInterface) List(ctx context.Context, limit int) ([]model.Inspection, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Inspection), args.Error(1)
}

func (m *MockInspectionRepositoryInterface) AddPhoto(ctx context.Context, id primitive.ObjectID, photo model.PhotoRef) error {
	args := m.Called(ctx, id, photo)
	return args.Error(0)
}

func (m *MockInspectionRepositoryInterface) RemovePhoto(ctx context.Context, id primitive.ObjectID, photoID string) error {
	args := m.Called(ctx, id, photoID)
	return args.Error(0)
}

func NewMockInspectionRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInspectionRepositoryInterface {
	m := &MockInspectionRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

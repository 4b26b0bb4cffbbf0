// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inspectwise/inspection-service/internal/domain/model"
)

type MockInspectorRepositoryInterface struct {
	mock.Mock
}

func (m *MockInspectorRepositoryInterface) Create(ctx context.Context, inspector *model.Inspector) error {
	args := m.Called(ctx, inspector)
	return args.Error(0)
}

func (m *MockInspectorRepositoryInterface) FindByEmail(ctx context.Context, email string) (*model.Inspector, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inspector), args.Error(1)
}

func (m *MockInspectorRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Inspector, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inspector), args.Error(1)
}

func NewMockInspectorRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInspectorRepositoryInterface {
	m := &MockInspectorRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/inspectwise/inspection-service/internal/domain/dto"
	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/service"
)

type MockInspectionService struct {
	mock.Mock
}

func (m *MockInspectionService) Create(ctx context.Context, req *dto.CreateInspectionRequest, inspectorID string) (*model.Inspection, error) {
	args := m.Called(ctx, req, inspectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inspection), args.Error(1)
}

func (m *MockInspectionService) Get(ctx context.Context, id string) (*model.Inspection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inspection), args.Error(1)
}

func (m *MockInspectionService) List(ctx context.Context, limit int) ([]model.Inspection, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Inspection), args.Error(1)
}

func (m *MockInspectionService) AddPhoto(ctx context.Context, id string, upload service.PhotoUpload) (*model.PhotoRef, error) {
	args := m.Called(ctx, id, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PhotoRef), args.Error(1)
}

func (m *MockInspectionService) GetPhoto(ctx context.Context, id, photoID string) (io.ReadCloser, model.PhotoRef, error) {
	args := m.Called(ctx, id, photoID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(model.PhotoRef), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(model.PhotoRef), args.Error(2)
}

func (m *MockInspectionService) RemovePhoto(ctx context.Context, id, photoID string) error {
	args := m.Called(ctx, id, photoID)
	return args.Error(0)
}

func NewMockInspectionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInspectionService {
	m := &MockInspectionService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

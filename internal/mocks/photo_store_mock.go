// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/inspectwise/inspection-service/internal/storage"
)

type MockPhotoStore struct {
	mock.Mock
}

func (m *MockPhotoStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, r, size, contentType)
	return args.Error(0)
}

func (m *MockPhotoStore) Get(ctx context.Context, key string) (io.ReadCloser, storage.Object, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.Object), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.Object), args.Error(2)
}

func (m *MockPhotoStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func NewMockPhotoStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPhotoStore {
	m := &MockPhotoStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

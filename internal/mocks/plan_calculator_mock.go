// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/sampling"
)

type MockPlanCalculator struct {
	mock.Mock
}

func (m *MockPlanCalculator) Evaluate(shape model.LotShape, level sampling.QualityLevel) (model.SamplingResult, error) {
	args := m.Called(shape, level)
	return args.Get(0).(model.SamplingResult), args.Error(1)
}

func (m *MockPlanCalculator) Resolve(lotSize int, level sampling.QualityLevel) (sampling.Plan, error) {
	args := m.Called(lotSize, level)
	return args.Get(0).(sampling.Plan), args.Error(1)
}

func (m *MockPlanCalculator) Judge(shape model.LotShape, level sampling.QualityLevel, defects int) (model.SamplingResult, sampling.Verdict, error) {
	args := m.Called(shape, level, defects)
	return args.Get(0).(model.SamplingResult), args.Get(1).(sampling.Verdict), args.Error(2)
}

func (m *MockPlanCalculator) InvalidateCache() {
	m.Called()
}

func NewMockPlanCalculator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlanCalculator {
	m := &MockPlanCalculator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/makeparse/internal/domain"
	"github.com/mouse-blink/makeparse/internal/model"
)

// MockOrchestrator is a mock implementation of domain.Orchestrator.
type MockOrchestrator struct {
	mock.Mock
}

// MockOrchestrator_Expecter records typed expectations on a MockOrchestrator.
type MockOrchestrator_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation helper.
func (_m *MockOrchestrator) EXPECT() *MockOrchestrator_Expecter {
	return &MockOrchestrator_Expecter{mock: &_m.Mock}
}

// ProcessMakefile provides a mock function with given fields: path, opts
func (_m *MockOrchestrator) ProcessMakefile(path model.Path, opts domain.ProcessOptions) (model.Makefile, error) {
	ret := _m.Called(path, opts)

	if rf, ok := ret.Get(0).(func(model.Path, domain.ProcessOptions) (model.Makefile, error)); ok {
		return rf(path, opts)
	}

	var r0 model.Makefile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Makefile)
	}

	return r0, ret.Error(1)
}

// MockOrchestrator_ProcessMakefile_Call wraps a *mock.Call for ProcessMakefile.
type MockOrchestrator_ProcessMakefile_Call struct {
	*mock.Call
}

// ProcessMakefile is a helper method to define mock.On call
func (_e *MockOrchestrator_Expecter) ProcessMakefile(path interface{}, opts interface{}) *MockOrchestrator_ProcessMakefile_Call {
	return &MockOrchestrator_ProcessMakefile_Call{Call: _e.mock.On("ProcessMakefile", path, opts)}
}

func (_c *MockOrchestrator_ProcessMakefile_Call) Run(run func(path model.Path, opts domain.ProcessOptions)) *MockOrchestrator_ProcessMakefile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.Path), args[1].(domain.ProcessOptions))
	})

	return _c
}

func (_c *MockOrchestrator_ProcessMakefile_Call) Return(_a0 model.Makefile, _a1 error) *MockOrchestrator_ProcessMakefile_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockOrchestrator_ProcessMakefile_Call) RunAndReturn(run func(model.Path, domain.ProcessOptions) (model.Makefile, error)) *MockOrchestrator_ProcessMakefile_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockOrchestrator creates a new instance of MockOrchestrator. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockOrchestrator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrchestrator {
	m := &MockOrchestrator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

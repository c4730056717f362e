package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/makeparse/internal/model"
)

// MockFileWatcher is a mock implementation of adapter.FileWatcher.
type MockFileWatcher struct {
	mock.Mock
}

// MockFileWatcher_Expecter records typed expectations on a MockFileWatcher.
type MockFileWatcher_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation helper.
func (_m *MockFileWatcher) EXPECT() *MockFileWatcher_Expecter {
	return &MockFileWatcher_Expecter{mock: &_m.Mock}
}

// Watch provides a mock function with given fields: ctx, path, onChange
func (_m *MockFileWatcher) Watch(ctx context.Context, path model.Path, onChange func() error) error {
	ret := _m.Called(ctx, path, onChange)

	if rf, ok := ret.Get(0).(func(context.Context, model.Path, func() error) error); ok {
		return rf(ctx, path, onChange)
	}

	return ret.Error(0)
}

// MockFileWatcher_Watch_Call wraps a *mock.Call for Watch.
type MockFileWatcher_Watch_Call struct {
	*mock.Call
}

// Watch is a helper method to define mock.On call
func (_e *MockFileWatcher_Expecter) Watch(ctx interface{}, path interface{}, onChange interface{}) *MockFileWatcher_Watch_Call {
	return &MockFileWatcher_Watch_Call{Call: _e.mock.On("Watch", ctx, path, onChange)}
}

func (_c *MockFileWatcher_Watch_Call) Run(run func(ctx context.Context, path model.Path, onChange func() error)) *MockFileWatcher_Watch_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path), args[2].(func() error))
	})

	return _c
}

func (_c *MockFileWatcher_Watch_Call) Return(_a0 error) *MockFileWatcher_Watch_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockFileWatcher_Watch_Call) RunAndReturn(run func(context.Context, model.Path, func() error) error) *MockFileWatcher_Watch_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockFileWatcher creates a new instance of MockFileWatcher. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockFileWatcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFileWatcher {
	m := &MockFileWatcher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

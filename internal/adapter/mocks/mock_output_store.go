package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/makeparse/internal/model"
)

// MockOutputStore is a mock implementation of adapter.OutputStore.
type MockOutputStore struct {
	mock.Mock
}

// MockOutputStore_Expecter records typed expectations on a MockOutputStore.
type MockOutputStore_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation helper.
func (_m *MockOutputStore) EXPECT() *MockOutputStore_Expecter {
	return &MockOutputStore_Expecter{mock: &_m.Mock}
}

// Write provides a mock function with given fields: path, data
func (_m *MockOutputStore) Write(path model.Path, data []byte) error {
	ret := _m.Called(path, data)

	if rf, ok := ret.Get(0).(func(model.Path, []byte) error); ok {
		return rf(path, data)
	}

	return ret.Error(0)
}

// MockOutputStore_Write_Call wraps a *mock.Call for Write.
type MockOutputStore_Write_Call struct {
	*mock.Call
}

// Write is a helper method to define mock.On call
func (_e *MockOutputStore_Expecter) Write(path interface{}, data interface{}) *MockOutputStore_Write_Call {
	return &MockOutputStore_Write_Call{Call: _e.mock.On("Write", path, data)}
}

func (_c *MockOutputStore_Write_Call) Run(run func(path model.Path, data []byte)) *MockOutputStore_Write_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.Path), args[1].([]byte))
	})

	return _c
}

func (_c *MockOutputStore_Write_Call) Return(_a0 error) *MockOutputStore_Write_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockOutputStore_Write_Call) RunAndReturn(run func(model.Path, []byte) error) *MockOutputStore_Write_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockOutputStore creates a new instance of MockOutputStore. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockOutputStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOutputStore {
	m := &MockOutputStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

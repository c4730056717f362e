package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/makeparse/internal/adapter"
)

// MockSchemaValidator is a mock implementation of adapter.SchemaValidator.
type MockSchemaValidator struct {
	mock.Mock
}

// MockSchemaValidator_Expecter records typed expectations on a MockSchemaValidator.
type MockSchemaValidator_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation helper.
func (_m *MockSchemaValidator) EXPECT() *MockSchemaValidator_Expecter {
	return &MockSchemaValidator_Expecter{mock: &_m.Mock}
}

// Source provides a mock function with given fields: name
func (_m *MockSchemaValidator) Source(name adapter.SchemaName) ([]byte, error) {
	ret := _m.Called(name)

	if rf, ok := ret.Get(0).(func(adapter.SchemaName) ([]byte, error)); ok {
		return rf(name)
	}

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

// MockSchemaValidator_Source_Call wraps a *mock.Call for Source.
type MockSchemaValidator_Source_Call struct {
	*mock.Call
}

// Source is a helper method to define mock.On call
func (_e *MockSchemaValidator_Expecter) Source(name interface{}) *MockSchemaValidator_Source_Call {
	return &MockSchemaValidator_Source_Call{Call: _e.mock.On("Source", name)}
}

func (_c *MockSchemaValidator_Source_Call) Run(run func(name adapter.SchemaName)) *MockSchemaValidator_Source_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(adapter.SchemaName))
	})

	return _c
}

func (_c *MockSchemaValidator_Source_Call) Return(_a0 []byte, _a1 error) *MockSchemaValidator_Source_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockSchemaValidator_Source_Call) RunAndReturn(run func(adapter.SchemaName) ([]byte, error)) *MockSchemaValidator_Source_Call {
	_c.Call.Return(run)

	return _c
}

// Validate provides a mock function with given fields: name, document
func (_m *MockSchemaValidator) Validate(name adapter.SchemaName, document []byte) error {
	ret := _m.Called(name, document)

	if rf, ok := ret.Get(0).(func(adapter.SchemaName, []byte) error); ok {
		return rf(name, document)
	}

	return ret.Error(0)
}

// MockSchemaValidator_Validate_Call wraps a *mock.Call for Validate.
type MockSchemaValidator_Validate_Call struct {
	*mock.Call
}

// Validate is a helper method to define mock.On call
func (_e *MockSchemaValidator_Expecter) Validate(name interface{}, document interface{}) *MockSchemaValidator_Validate_Call {
	return &MockSchemaValidator_Validate_Call{Call: _e.mock.On("Validate", name, document)}
}

func (_c *MockSchemaValidator_Validate_Call) Run(run func(name adapter.SchemaName, document []byte)) *MockSchemaValidator_Validate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(adapter.SchemaName), args[1].([]byte))
	})

	return _c
}

func (_c *MockSchemaValidator_Validate_Call) Return(_a0 error) *MockSchemaValidator_Validate_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockSchemaValidator_Validate_Call) RunAndReturn(run func(adapter.SchemaName, []byte) error) *MockSchemaValidator_Validate_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockSchemaValidator creates a new instance of MockSchemaValidator. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSchemaValidator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSchemaValidator {
	m := &MockSchemaValidator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

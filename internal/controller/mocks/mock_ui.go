package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/makeparse/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

// MockUI_Expecter records typed expectations on a MockUI.
type MockUI_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation helper.
func (_m *MockUI) EXPECT() *MockUI_Expecter {
	return &MockUI_Expecter{mock: &_m.Mock}
}

// DisplayTargets provides a mock function with given fields: source, targets
func (_m *MockUI) DisplayTargets(source model.Path, targets model.Targets) error {
	ret := _m.Called(source, targets)

	if rf, ok := ret.Get(0).(func(model.Path, model.Targets) error); ok {
		return rf(source, targets)
	}

	return ret.Error(0)
}

// MockUI_DisplayTargets_Call wraps a *mock.Call for DisplayTargets.
type MockUI_DisplayTargets_Call struct {
	*mock.Call
}

// DisplayTargets is a helper method to define mock.On call
func (_e *MockUI_Expecter) DisplayTargets(source interface{}, targets interface{}) *MockUI_DisplayTargets_Call {
	return &MockUI_DisplayTargets_Call{Call: _e.mock.On("DisplayTargets", source, targets)}
}

func (_c *MockUI_DisplayTargets_Call) Run(run func(source model.Path, targets model.Targets)) *MockUI_DisplayTargets_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.Path), args[1].(model.Targets))
	})

	return _c
}

func (_c *MockUI_DisplayTargets_Call) Return(_a0 error) *MockUI_DisplayTargets_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockUI_DisplayTargets_Call) RunAndReturn(run func(model.Path, model.Targets) error) *MockUI_DisplayTargets_Call {
	_c.Call.Return(run)

	return _c
}

// DisplayScan provides a mock function with given fields: makefiles
func (_m *MockUI) DisplayScan(makefiles []model.Makefile) error {
	ret := _m.Called(makefiles)

	if rf, ok := ret.Get(0).(func([]model.Makefile) error); ok {
		return rf(makefiles)
	}

	return ret.Error(0)
}

// MockUI_DisplayScan_Call wraps a *mock.Call for DisplayScan.
type MockUI_DisplayScan_Call struct {
	*mock.Call
}

// DisplayScan is a helper method to define mock.On call
func (_e *MockUI_Expecter) DisplayScan(makefiles interface{}) *MockUI_DisplayScan_Call {
	return &MockUI_DisplayScan_Call{Call: _e.mock.On("DisplayScan", makefiles)}
}

func (_c *MockUI_DisplayScan_Call) Run(run func(makefiles []model.Makefile)) *MockUI_DisplayScan_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].([]model.Makefile))
	})

	return _c
}

func (_c *MockUI_DisplayScan_Call) Return(_a0 error) *MockUI_DisplayScan_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockUI_DisplayScan_Call) RunAndReturn(run func([]model.Makefile) error) *MockUI_DisplayScan_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockUI creates a new instance of MockUI. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	m := &MockUI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

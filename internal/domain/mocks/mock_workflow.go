package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/makeparse/internal/domain"
	"github.com/mouse-blink/makeparse/internal/model"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// MockWorkflow_Expecter records typed expectations on a MockWorkflow.
type MockWorkflow_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation helper.
func (_m *MockWorkflow) EXPECT() *MockWorkflow_Expecter {
	return &MockWorkflow_Expecter{mock: &_m.Mock}
}

// Analyze provides a mock function with given fields: args
func (_m *MockWorkflow) Analyze(args domain.AnalyzeArgs) error {
	ret := _m.Called(args)

	if rf, ok := ret.Get(0).(func(domain.AnalyzeArgs) error); ok {
		return rf(args)
	}

	return ret.Error(0)
}

// MockWorkflow_Analyze_Call wraps a *mock.Call for Analyze.
type MockWorkflow_Analyze_Call struct {
	*mock.Call
}

// Analyze is a helper method to define mock.On call
func (_e *MockWorkflow_Expecter) Analyze(args interface{}) *MockWorkflow_Analyze_Call {
	return &MockWorkflow_Analyze_Call{Call: _e.mock.On("Analyze", args)}
}

func (_c *MockWorkflow_Analyze_Call) Run(run func(args domain.AnalyzeArgs)) *MockWorkflow_Analyze_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.AnalyzeArgs))
	})

	return _c
}

func (_c *MockWorkflow_Analyze_Call) Return(_a0 error) *MockWorkflow_Analyze_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_Analyze_Call) RunAndReturn(run func(domain.AnalyzeArgs) error) *MockWorkflow_Analyze_Call {
	_c.Call.Return(run)

	return _c
}

// Scan provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Scan(ctx context.Context, args domain.ScanArgs) ([]model.Makefile, error) {
	ret := _m.Called(ctx, args)

	if rf, ok := ret.Get(0).(func(context.Context, domain.ScanArgs) ([]model.Makefile, error)); ok {
		return rf(ctx, args)
	}

	var r0 []model.Makefile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Makefile)
	}

	return r0, ret.Error(1)
}

// MockWorkflow_Scan_Call wraps a *mock.Call for Scan.
type MockWorkflow_Scan_Call struct {
	*mock.Call
}

// Scan is a helper method to define mock.On call
func (_e *MockWorkflow_Expecter) Scan(ctx interface{}, args interface{}) *MockWorkflow_Scan_Call {
	return &MockWorkflow_Scan_Call{Call: _e.mock.On("Scan", ctx, args)}
}

func (_c *MockWorkflow_Scan_Call) Run(run func(ctx context.Context, args domain.ScanArgs)) *MockWorkflow_Scan_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ScanArgs))
	})

	return _c
}

func (_c *MockWorkflow_Scan_Call) Return(_a0 []model.Makefile, _a1 error) *MockWorkflow_Scan_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockWorkflow_Scan_Call) RunAndReturn(run func(context.Context, domain.ScanArgs) ([]model.Makefile, error)) *MockWorkflow_Scan_Call {
	_c.Call.Return(run)

	return _c
}

// Show provides a mock function with given fields: args
func (_m *MockWorkflow) Show(args domain.ShowArgs) error {
	ret := _m.Called(args)

	if rf, ok := ret.Get(0).(func(domain.ShowArgs) error); ok {
		return rf(args)
	}

	return ret.Error(0)
}

// MockWorkflow_Show_Call wraps a *mock.Call for Show.
type MockWorkflow_Show_Call struct {
	*mock.Call
}

// Show is a helper method to define mock.On call
func (_e *MockWorkflow_Expecter) Show(args interface{}) *MockWorkflow_Show_Call {
	return &MockWorkflow_Show_Call{Call: _e.mock.On("Show", args)}
}

func (_c *MockWorkflow_Show_Call) Run(run func(args domain.ShowArgs)) *MockWorkflow_Show_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.ShowArgs))
	})

	return _c
}

func (_c *MockWorkflow_Show_Call) Return(_a0 error) *MockWorkflow_Show_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_Show_Call) RunAndReturn(run func(domain.ShowArgs) error) *MockWorkflow_Show_Call {
	_c.Call.Return(run)

	return _c
}

// View provides a mock function with given fields: args
func (_m *MockWorkflow) View(args domain.ViewArgs) (model.Targets, error) {
	ret := _m.Called(args)

	if rf, ok := ret.Get(0).(func(domain.ViewArgs) (model.Targets, error)); ok {
		return rf(args)
	}

	var r0 model.Targets
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Targets)
	}

	return r0, ret.Error(1)
}

// MockWorkflow_View_Call wraps a *mock.Call for View.
type MockWorkflow_View_Call struct {
	*mock.Call
}

// View is a helper method to define mock.On call
func (_e *MockWorkflow_Expecter) View(args interface{}) *MockWorkflow_View_Call {
	return &MockWorkflow_View_Call{Call: _e.mock.On("View", args)}
}

func (_c *MockWorkflow_View_Call) Run(run func(args domain.ViewArgs)) *MockWorkflow_View_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.ViewArgs))
	})

	return _c
}

func (_c *MockWorkflow_View_Call) Return(_a0 model.Targets, _a1 error) *MockWorkflow_View_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockWorkflow_View_Call) RunAndReturn(run func(domain.ViewArgs) (model.Targets, error)) *MockWorkflow_View_Call {
	_c.Call.Return(run)

	return _c
}

// Watch provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Watch(ctx context.Context, args domain.WatchArgs) error {
	ret := _m.Called(ctx, args)

	if rf, ok := ret.Get(0).(func(context.Context, domain.WatchArgs) error); ok {
		return rf(ctx, args)
	}

	return ret.Error(0)
}

// MockWorkflow_Watch_Call wraps a *mock.Call for Watch.
type MockWorkflow_Watch_Call struct {
	*mock.Call
}

// Watch is a helper method to define mock.On call
func (_e *MockWorkflow_Expecter) Watch(ctx interface{}, args interface{}) *MockWorkflow_Watch_Call {
	return &MockWorkflow_Watch_Call{Call: _e.mock.On("Watch", ctx, args)}
}

func (_c *MockWorkflow_Watch_Call) Run(run func(ctx context.Context, args domain.WatchArgs)) *MockWorkflow_Watch_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.WatchArgs))
	})

	return _c
}

func (_c *MockWorkflow_Watch_Call) Return(_a0 error) *MockWorkflow_Watch_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_Watch_Call) RunAndReturn(run func(context.Context, domain.WatchArgs) error) *MockWorkflow_Watch_Call {
	_c.Call.Return(run)

	return _c
}

// Schema provides a mock function with given fields: args
func (_m *MockWorkflow) Schema(args domain.SchemaArgs) error {
	ret := _m.Called(args)

	if rf, ok := ret.Get(0).(func(domain.SchemaArgs) error); ok {
		return rf(args)
	}

	return ret.Error(0)
}

// MockWorkflow_Schema_Call wraps a *mock.Call for Schema.
type MockWorkflow_Schema_Call struct {
	*mock.Call
}

// Schema is a helper method to define mock.On call
func (_e *MockWorkflow_Expecter) Schema(args interface{}) *MockWorkflow_Schema_Call {
	return &MockWorkflow_Schema_Call{Call: _e.mock.On("Schema", args)}
}

func (_c *MockWorkflow_Schema_Call) Run(run func(args domain.SchemaArgs)) *MockWorkflow_Schema_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.SchemaArgs))
	})

	return _c
}

func (_c *MockWorkflow_Schema_Call) Return(_a0 error) *MockWorkflow_Schema_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_Schema_Call) RunAndReturn(run func(domain.SchemaArgs) error) *MockWorkflow_Schema_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

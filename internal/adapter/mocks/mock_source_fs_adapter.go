package mocks

import (
	"io"
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/makeparse/internal/adapter"
	"github.com/mouse-blink/makeparse/internal/model"
)

// MockSourceFSAdapter is a mock implementation of adapter.SourceFSAdapter.
type MockSourceFSAdapter struct {
	mock.Mock
}

// MockSourceFSAdapter_Expecter records typed expectations on a MockSourceFSAdapter.
type MockSourceFSAdapter_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation helper.
func (_m *MockSourceFSAdapter) EXPECT() *MockSourceFSAdapter_Expecter {
	return &MockSourceFSAdapter_Expecter{mock: &_m.Mock}
}

// Open provides a mock function with given fields: path
func (_m *MockSourceFSAdapter) Open(path model.Path) (io.ReadCloser, error) {
	ret := _m.Called(path)

	if rf, ok := ret.Get(0).(func(model.Path) (io.ReadCloser, error)); ok {
		return rf(path)
	}

	var r0 io.ReadCloser
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(io.ReadCloser)
	}

	return r0, ret.Error(1)
}

// MockSourceFSAdapter_Open_Call wraps a *mock.Call for Open.
type MockSourceFSAdapter_Open_Call struct {
	*mock.Call
}

// Open is a helper method to define mock.On call
func (_e *MockSourceFSAdapter_Expecter) Open(path interface{}) *MockSourceFSAdapter_Open_Call {
	return &MockSourceFSAdapter_Open_Call{Call: _e.mock.On("Open", path)}
}

func (_c *MockSourceFSAdapter_Open_Call) Run(run func(path model.Path)) *MockSourceFSAdapter_Open_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.Path))
	})

	return _c
}

func (_c *MockSourceFSAdapter_Open_Call) Return(_a0 io.ReadCloser, _a1 error) *MockSourceFSAdapter_Open_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockSourceFSAdapter_Open_Call) RunAndReturn(run func(model.Path) (io.ReadCloser, error)) *MockSourceFSAdapter_Open_Call {
	_c.Call.Return(run)

	return _c
}

// FindMakefiles provides a mock function with given fields: roots, patterns
func (_m *MockSourceFSAdapter) FindMakefiles(roots []model.Path, patterns []string) ([]model.Path, error) {
	ret := _m.Called(roots, patterns)

	if rf, ok := ret.Get(0).(func([]model.Path, []string) ([]model.Path, error)); ok {
		return rf(roots, patterns)
	}

	var r0 []model.Path
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Path)
	}

	return r0, ret.Error(1)
}

// MockSourceFSAdapter_FindMakefiles_Call wraps a *mock.Call for FindMakefiles.
type MockSourceFSAdapter_FindMakefiles_Call struct {
	*mock.Call
}

// FindMakefiles is a helper method to define mock.On call
func (_e *MockSourceFSAdapter_Expecter) FindMakefiles(roots interface{}, patterns interface{}) *MockSourceFSAdapter_FindMakefiles_Call {
	return &MockSourceFSAdapter_FindMakefiles_Call{Call: _e.mock.On("FindMakefiles", roots, patterns)}
}

func (_c *MockSourceFSAdapter_FindMakefiles_Call) Run(run func(roots []model.Path, patterns []string)) *MockSourceFSAdapter_FindMakefiles_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].([]model.Path), args[1].([]string))
	})

	return _c
}

func (_c *MockSourceFSAdapter_FindMakefiles_Call) Return(_a0 []model.Path, _a1 error) *MockSourceFSAdapter_FindMakefiles_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockSourceFSAdapter_FindMakefiles_Call) RunAndReturn(run func([]model.Path, []string) ([]model.Path, error)) *MockSourceFSAdapter_FindMakefiles_Call {
	_c.Call.Return(run)

	return _c
}

// Walk provides a mock function with given fields: root, recursive, fn
func (_m *MockSourceFSAdapter) Walk(root model.Path, recursive bool, fn adapter.FilepathWalkFunc) error {
	ret := _m.Called(root, recursive, fn)

	if rf, ok := ret.Get(0).(func(model.Path, bool, adapter.FilepathWalkFunc) error); ok {
		return rf(root, recursive, fn)
	}

	return ret.Error(0)
}

// MockSourceFSAdapter_Walk_Call wraps a *mock.Call for Walk.
type MockSourceFSAdapter_Walk_Call struct {
	*mock.Call
}

// Walk is a helper method to define mock.On call
func (_e *MockSourceFSAdapter_Expecter) Walk(root interface{}, recursive interface{}, fn interface{}) *MockSourceFSAdapter_Walk_Call {
	return &MockSourceFSAdapter_Walk_Call{Call: _e.mock.On("Walk", root, recursive, fn)}
}

func (_c *MockSourceFSAdapter_Walk_Call) Run(run func(root model.Path, recursive bool, fn adapter.FilepathWalkFunc)) *MockSourceFSAdapter_Walk_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.Path), args[1].(bool), args[2].(adapter.FilepathWalkFunc))
	})

	return _c
}

func (_c *MockSourceFSAdapter_Walk_Call) Return(_a0 error) *MockSourceFSAdapter_Walk_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockSourceFSAdapter_Walk_Call) RunAndReturn(run func(model.Path, bool, adapter.FilepathWalkFunc) error) *MockSourceFSAdapter_Walk_Call {
	_c.Call.Return(run)

	return _c
}

// HashFile provides a mock function with given fields: path
func (_m *MockSourceFSAdapter) HashFile(path model.Path) (string, error) {
	ret := _m.Called(path)

	if rf, ok := ret.Get(0).(func(model.Path) (string, error)); ok {
		return rf(path)
	}

	var r0 string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	return r0, ret.Error(1)
}

// MockSourceFSAdapter_HashFile_Call wraps a *mock.Call for HashFile.
type MockSourceFSAdapter_HashFile_Call struct {
	*mock.Call
}

// HashFile is a helper method to define mock.On call
func (_e *MockSourceFSAdapter_Expecter) HashFile(path interface{}) *MockSourceFSAdapter_HashFile_Call {
	return &MockSourceFSAdapter_HashFile_Call{Call: _e.mock.On("HashFile", path)}
}

func (_c *MockSourceFSAdapter_HashFile_Call) Run(run func(path model.Path)) *MockSourceFSAdapter_HashFile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.Path))
	})

	return _c
}

func (_c *MockSourceFSAdapter_HashFile_Call) Return(_a0 string, _a1 error) *MockSourceFSAdapter_HashFile_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockSourceFSAdapter_HashFile_Call) RunAndReturn(run func(model.Path) (string, error)) *MockSourceFSAdapter_HashFile_Call {
	_c.Call.Return(run)

	return _c
}

// FileInfo provides a mock function with given fields: path
func (_m *MockSourceFSAdapter) FileInfo(path model.Path) (os.FileInfo, error) {
	ret := _m.Called(path)

	if rf, ok := ret.Get(0).(func(model.Path) (os.FileInfo, error)); ok {
		return rf(path)
	}

	var r0 os.FileInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(os.FileInfo)
	}

	return r0, ret.Error(1)
}

// MockSourceFSAdapter_FileInfo_Call wraps a *mock.Call for FileInfo.
type MockSourceFSAdapter_FileInfo_Call struct {
	*mock.Call
}

// FileInfo is a helper method to define mock.On call
func (_e *MockSourceFSAdapter_Expecter) FileInfo(path interface{}) *MockSourceFSAdapter_FileInfo_Call {
	return &MockSourceFSAdapter_FileInfo_Call{Call: _e.mock.On("FileInfo", path)}
}

func (_c *MockSourceFSAdapter_FileInfo_Call) Run(run func(path model.Path)) *MockSourceFSAdapter_FileInfo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.Path))
	})

	return _c
}

func (_c *MockSourceFSAdapter_FileInfo_Call) Return(_a0 os.FileInfo, _a1 error) *MockSourceFSAdapter_FileInfo_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockSourceFSAdapter_FileInfo_Call) RunAndReturn(run func(model.Path) (os.FileInfo, error)) *MockSourceFSAdapter_FileInfo_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockSourceFSAdapter creates a new instance of MockSourceFSAdapter. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	m := &MockSourceFSAdapter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

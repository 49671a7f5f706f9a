package mocks

import (
	"context"
	"io"

	"nihongo_diary/internal/model"

	mock "github.com/stretchr/testify/mock"
)

// JlptImportService is an autogenerated mock type for the JlptImportService type
type JlptImportService struct {
	mock.Mock
}

// ImportFile provides a mock function with given fields: ctx, level, filename, r
func (_m *JlptImportService) ImportFile(ctx context.Context, level model.JlptLevel, filename string, r io.Reader) (*model.ImportResult, error) {
	ret := _m.Called(ctx, level, filename, r)

	if len(ret) == 0 {
		panic("no return value specified for ImportFile")
	}

	var r0 *model.ImportResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.JlptLevel, string, io.Reader) (*model.ImportResult, error)); ok {
		return rf(ctx, level, filename, r)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.JlptLevel, string, io.Reader) *model.ImportResult); ok {
		r0 = rf(ctx, level, filename, r)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.ImportResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.JlptLevel, string, io.Reader) error); ok {
		r1 = rf(ctx, level, filename, r)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ImportDirectory provides a mock function with given fields: ctx, dir
func (_m *JlptImportService) ImportDirectory(ctx context.Context, dir string) ([]*model.ImportResult, error) {
	ret := _m.Called(ctx, dir)

	if len(ret) == 0 {
		panic("no return value specified for ImportDirectory")
	}

	var r0 []*model.ImportResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]*model.ImportResult, error)); ok {
		return rf(ctx, dir)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []*model.ImportResult); ok {
		r0 = rf(ctx, dir)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.ImportResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, dir)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CountJlptWords provides a mock function with given fields: ctx, level
func (_m *JlptImportService) CountJlptWords(ctx context.Context, level model.JlptLevel) (int64, error) {
	ret := _m.Called(ctx, level)

	if len(ret) == 0 {
		panic("no return value specified for CountJlptWords")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.JlptLevel) (int64, error)); ok {
		return rf(ctx, level)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.JlptLevel) int64); ok {
		r0 = rf(ctx, level)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.JlptLevel) error); ok {
		r1 = rf(ctx, level)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CountAllJlptWords provides a mock function with given fields: ctx
func (_m *JlptImportService) CountAllJlptWords(ctx context.Context) (*model.JlptWordCount, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for CountAllJlptWords")
	}

	var r0 *model.JlptWordCount
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*model.JlptWordCount, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *model.JlptWordCount); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.JlptWordCount)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewJlptImportService creates a new instance of JlptImportService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewJlptImportService(t interface {
	mock.TestingT
	Cleanup(func())
}) *JlptImportService {
	m := &JlptImportService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

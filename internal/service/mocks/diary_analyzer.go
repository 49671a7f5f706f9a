package mocks

import (
	"context"

	"nihongo_diary/internal/model"

	mock "github.com/stretchr/testify/mock"
)

// DiaryAnalyzer is an autogenerated mock type for the DiaryAnalyzer type
type DiaryAnalyzer struct {
	mock.Mock
}

// ExtractWords provides a mock function with given fields: ctx, text
func (_m *DiaryAnalyzer) ExtractWords(ctx context.Context, text string) []*model.DiaryWord {
	ret := _m.Called(ctx, text)

	if len(ret) == 0 {
		panic("no return value specified for ExtractWords")
	}

	var r0 []*model.DiaryWord
	if rf, ok := ret.Get(0).(func(context.Context, string) []*model.DiaryWord); ok {
		r0 = rf(ctx, text)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.DiaryWord)
		}
	}

	return r0
}

// NewDiaryAnalyzer creates a new instance of DiaryAnalyzer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewDiaryAnalyzer(t interface {
	mock.TestingT
	Cleanup(func())
}) *DiaryAnalyzer {
	m := &DiaryAnalyzer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

package mocks

import (
	"context"

	"nihongo_diary/internal/model"

	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// QuizService is an autogenerated mock type for the QuizService type
type QuizService struct {
	mock.Mock
}

// GenerateQuiz provides a mock function with given fields: ctx, level, count
func (_m *QuizService) GenerateQuiz(ctx context.Context, level model.JlptLevel, count int) ([]*model.QuizQuestionResponse, error) {
	ret := _m.Called(ctx, level, count)

	if len(ret) == 0 {
		panic("no return value specified for GenerateQuiz")
	}

	var r0 []*model.QuizQuestionResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.JlptLevel, int) ([]*model.QuizQuestionResponse, error)); ok {
		return rf(ctx, level, count)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.JlptLevel, int) []*model.QuizQuestionResponse); ok {
		r0 = rf(ctx, level, count)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.QuizQuestionResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.JlptLevel, int) error); ok {
		r1 = rf(ctx, level, count)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CheckAnswer provides a mock function with given fields: ctx, userID, req
func (_m *QuizService) CheckAnswer(ctx context.Context, userID *uuid.UUID, req *model.QuizAnswerRequest) (*model.QuizResultResponse, error) {
	ret := _m.Called(ctx, userID, req)

	if len(ret) == 0 {
		panic("no return value specified for CheckAnswer")
	}

	var r0 *model.QuizResultResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *uuid.UUID, *model.QuizAnswerRequest) (*model.QuizResultResponse, error)); ok {
		return rf(ctx, userID, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *uuid.UUID, *model.QuizAnswerRequest) *model.QuizResultResponse); ok {
		r0 = rf(ctx, userID, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.QuizResultResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *uuid.UUID, *model.QuizAnswerRequest) error); ok {
		r1 = rf(ctx, userID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewQuizService creates a new instance of QuizService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewQuizService(t interface {
	mock.TestingT
	Cleanup(func())
}) *QuizService {
	m := &QuizService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

package mocks

import (
	"context"

	"nihongo_diary/internal/model"

	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// ReviewService is an autogenerated mock type for the ReviewService type
type ReviewService struct {
	mock.Mock
}

// GetReviewWords provides a mock function with given fields: ctx, userID
func (_m *ReviewService) GetReviewWords(ctx context.Context, userID uuid.UUID) ([]*model.ReviewWordResponse, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetReviewWords")
	}

	var r0 []*model.ReviewWordResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*model.ReviewWordResponse, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*model.ReviewWordResponse); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.ReviewWordResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetReviewWordsCount provides a mock function with given fields: ctx, userID
func (_m *ReviewService) GetReviewWordsCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetReviewWordsCount")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (int64, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) int64); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RecordResult provides a mock function with given fields: ctx, userID, quizWordID, isCorrect
func (_m *ReviewService) RecordResult(ctx context.Context, userID uuid.UUID, quizWordID uuid.UUID, isCorrect bool) error {
	ret := _m.Called(ctx, userID, quizWordID, isCorrect)

	if len(ret) == 0 {
		panic("no return value specified for RecordResult")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, bool) error); ok {
		r0 = rf(ctx, userID, quizWordID, isCorrect)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewReviewService creates a new instance of ReviewService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewReviewService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewService {
	m := &ReviewService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

package mocks

import (
	"context"
	"time"

	"nihongo_diary/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// ProgressRepository is an autogenerated mock type for the ProgressRepository type
type ProgressRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, tx, progress
func (_m *ProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.QuizProgress) error {
	ret := _m.Called(ctx, tx, progress)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, *model.QuizProgress) error); ok {
		r0 = rf(ctx, tx, progress)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByUserAndWord provides a mock function with given fields: ctx, db, userID, quizWordID
func (_m *ProgressRepository) FindByUserAndWord(ctx context.Context, db *gorm.DB, userID uuid.UUID, quizWordID uuid.UUID) (*model.QuizProgress, error) {
	ret := _m.Called(ctx, db, userID, quizWordID)

	if len(ret) == 0 {
		panic("no return value specified for FindByUserAndWord")
	}

	var r0 *model.QuizProgress
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID, uuid.UUID) (*model.QuizProgress, error)); ok {
		return rf(ctx, db, userID, quizWordID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID, uuid.UUID) *model.QuizProgress); ok {
		r0 = rf(ctx, db, userID, quizWordID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.QuizProgress)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, db, userID, quizWordID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, tx, progress
func (_m *ProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.QuizProgress) error {
	ret := _m.Called(ctx, tx, progress)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, *model.QuizProgress) error); ok {
		r0 = rf(ctx, tx, progress)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindReviewable provides a mock function with given fields: ctx, db, userID, now, limit
func (_m *ProgressRepository) FindReviewable(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time, limit int) ([]*model.QuizProgress, error) {
	ret := _m.Called(ctx, db, userID, now, limit)

	if len(ret) == 0 {
		panic("no return value specified for FindReviewable")
	}

	var r0 []*model.QuizProgress
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID, time.Time, int) ([]*model.QuizProgress, error)); ok {
		return rf(ctx, db, userID, now, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID, time.Time, int) []*model.QuizProgress); ok {
		r0 = rf(ctx, db, userID, now, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.QuizProgress)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, uuid.UUID, time.Time, int) error); ok {
		r1 = rf(ctx, db, userID, now, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewProgressRepository creates a new instance of ProgressRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewProgressRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProgressRepository {
	m := &ProgressRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

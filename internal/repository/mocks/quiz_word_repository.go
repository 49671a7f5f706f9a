package mocks

import (
	"context"

	"nihongo_diary/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// QuizWordRepository is an autogenerated mock type for the QuizWordRepository type
type QuizWordRepository struct {
	mock.Mock
}

// CountByLevel provides a mock function with given fields: ctx, db, level
func (_m *QuizWordRepository) CountByLevel(ctx context.Context, db *gorm.DB, level model.JlptLevel) (int64, error) {
	ret := _m.Called(ctx, db, level)

	if len(ret) == 0 {
		panic("no return value specified for CountByLevel")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, model.JlptLevel) (int64, error)); ok {
		return rf(ctx, db, level)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, model.JlptLevel) int64); ok {
		r0 = rf(ctx, db, level)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, model.JlptLevel) error); ok {
		r1 = rf(ctx, db, level)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// AllByLevel provides a mock function with given fields: ctx, db, level
func (_m *QuizWordRepository) AllByLevel(ctx context.Context, db *gorm.DB, level model.JlptLevel) ([]*model.QuizWord, error) {
	ret := _m.Called(ctx, db, level)

	if len(ret) == 0 {
		panic("no return value specified for AllByLevel")
	}

	var r0 []*model.QuizWord
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, model.JlptLevel) ([]*model.QuizWord, error)); ok {
		return rf(ctx, db, level)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, model.JlptLevel) []*model.QuizWord); ok {
		r0 = rf(ctx, db, level)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.QuizWord)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, model.JlptLevel) error); ok {
		r1 = rf(ctx, db, level)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RandomSampleByLevel provides a mock function with given fields: ctx, db, level, n
func (_m *QuizWordRepository) RandomSampleByLevel(ctx context.Context, db *gorm.DB, level model.JlptLevel, n int) ([]*model.QuizWord, error) {
	ret := _m.Called(ctx, db, level, n)

	if len(ret) == 0 {
		panic("no return value specified for RandomSampleByLevel")
	}

	var r0 []*model.QuizWord
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, model.JlptLevel, int) ([]*model.QuizWord, error)); ok {
		return rf(ctx, db, level, n)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, model.JlptLevel, int) []*model.QuizWord); ok {
		r0 = rf(ctx, db, level, n)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.QuizWord)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, model.JlptLevel, int) error); ok {
		r1 = rf(ctx, db, level, n)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByID provides a mock function with given fields: ctx, db, wordID
func (_m *QuizWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.QuizWord, error) {
	ret := _m.Called(ctx, db, wordID)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *model.QuizWord
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) (*model.QuizWord, error)); ok {
		return rf(ctx, db, wordID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) *model.QuizWord); ok {
		r0 = rf(ctx, db, wordID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.QuizWord)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, uuid.UUID) error); ok {
		r1 = rf(ctx, db, wordID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ExistsJlptWord provides a mock function with given fields: ctx, db, level, word, hiragana
func (_m *QuizWordRepository) ExistsJlptWord(ctx context.Context, db *gorm.DB, level model.JlptLevel, word string, hiragana string) (bool, error) {
	ret := _m.Called(ctx, db, level, word, hiragana)

	if len(ret) == 0 {
		panic("no return value specified for ExistsJlptWord")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, model.JlptLevel, string, string) (bool, error)); ok {
		return rf(ctx, db, level, word, hiragana)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, model.JlptLevel, string, string) bool); ok {
		r0 = rf(ctx, db, level, word, hiragana)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, model.JlptLevel, string, string) error); ok {
		r1 = rf(ctx, db, level, word, hiragana)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateInBatches provides a mock function with given fields: ctx, db, words
func (_m *QuizWordRepository) CreateInBatches(ctx context.Context, db *gorm.DB, words []*model.QuizWord) error {
	ret := _m.Called(ctx, db, words)

	if len(ret) == 0 {
		panic("no return value specified for CreateInBatches")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, []*model.QuizWord) error); ok {
		r0 = rf(ctx, db, words)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// CountAllJlpt provides a mock function with given fields: ctx, db
func (_m *QuizWordRepository) CountAllJlpt(ctx context.Context, db *gorm.DB) (int64, error) {
	ret := _m.Called(ctx, db)

	if len(ret) == 0 {
		panic("no return value specified for CountAllJlpt")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB) (int64, error)); ok {
		return rf(ctx, db)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB) int64); ok {
		r0 = rf(ctx, db)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB) error); ok {
		r1 = rf(ctx, db)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewQuizWordRepository creates a new instance of QuizWordRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewQuizWordRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *QuizWordRepository {
	m := &QuizWordRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

package mocks

import (
	"context"
	"time"

	"nihongo_diary/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// DiaryRepository is an autogenerated mock type for the DiaryRepository type
type DiaryRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, db, diary
func (_m *DiaryRepository) Create(ctx context.Context, db *gorm.DB, diary *model.Diary) error {
	ret := _m.Called(ctx, db, diary)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, *model.Diary) error); ok {
		r0 = rf(ctx, db, diary)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByID provides a mock function with given fields: ctx, db, diaryID
func (_m *DiaryRepository) FindByID(ctx context.Context, db *gorm.DB, diaryID uuid.UUID) (*model.Diary, error) {
	ret := _m.Called(ctx, db, diaryID)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *model.Diary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) (*model.Diary, error)); ok {
		return rf(ctx, db, diaryID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) *model.Diary); ok {
		r0 = rf(ctx, db, diaryID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Diary)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, uuid.UUID) error); ok {
		r1 = rf(ctx, db, diaryID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindPublic provides a mock function with given fields: ctx, db
func (_m *DiaryRepository) FindPublic(ctx context.Context, db *gorm.DB) ([]*model.Diary, error) {
	ret := _m.Called(ctx, db)

	if len(ret) == 0 {
		panic("no return value specified for FindPublic")
	}

	var r0 []*model.Diary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB) ([]*model.Diary, error)); ok {
		return rf(ctx, db)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB) []*model.Diary); ok {
		r0 = rf(ctx, db)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Diary)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB) error); ok {
		r1 = rf(ctx, db)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByUser provides a mock function with given fields: ctx, db, userID
func (_m *DiaryRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Diary, error) {
	ret := _m.Called(ctx, db, userID)

	if len(ret) == 0 {
		panic("no return value specified for FindByUser")
	}

	var r0 []*model.Diary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) ([]*model.Diary, error)); ok {
		return rf(ctx, db, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) []*model.Diary); ok {
		r0 = rf(ctx, db, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Diary)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, uuid.UUID) error); ok {
		r1 = rf(ctx, db, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ExistsByUserAndDate provides a mock function with given fields: ctx, db, userID, date
func (_m *DiaryRepository) ExistsByUserAndDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) (bool, error) {
	ret := _m.Called(ctx, db, userID, date)

	if len(ret) == 0 {
		panic("no return value specified for ExistsByUserAndDate")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID, time.Time) (bool, error)); ok {
		return rf(ctx, db, userID, date)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID, time.Time) bool); ok {
		r0 = rf(ctx, db, userID, date)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, uuid.UUID, time.Time) error); ok {
		r1 = rf(ctx, db, userID, date)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, db, diary
func (_m *DiaryRepository) Update(ctx context.Context, db *gorm.DB, diary *model.Diary) error {
	ret := _m.Called(ctx, db, diary)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, *model.Diary) error); ok {
		r0 = rf(ctx, db, diary)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Delete provides a mock function with given fields: ctx, db, diaryID
func (_m *DiaryRepository) Delete(ctx context.Context, db *gorm.DB, diaryID uuid.UUID) error {
	ret := _m.Called(ctx, db, diaryID)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) error); ok {
		r0 = rf(ctx, db, diaryID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewDiaryRepository creates a new instance of DiaryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewDiaryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *DiaryRepository {
	m := &DiaryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

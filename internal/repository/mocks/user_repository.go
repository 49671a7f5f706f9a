// Package mocks は testify/mock によるテスト用モックです (mockery と同じ形式)。
package mocks

import (
	"context"
	"time"

	"nihongo_diary/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// UserRepository is an autogenerated mock type for the UserRepository type
type UserRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, db, user
func (_m *UserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	ret := _m.Called(ctx, db, user)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, *model.User) error); ok {
		r0 = rf(ctx, db, user)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByID provides a mock function with given fields: ctx, db, userID
func (_m *UserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	ret := _m.Called(ctx, db, userID)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *model.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) (*model.User, error)); ok {
		return rf(ctx, db, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) *model.User); ok {
		r0 = rf(ctx, db, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, uuid.UUID) error); ok {
		r1 = rf(ctx, db, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByUsername provides a mock function with given fields: ctx, db, username
func (_m *UserRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error) {
	ret := _m.Called(ctx, db, username)

	if len(ret) == 0 {
		panic("no return value specified for FindByUsername")
	}

	var r0 *model.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, string) (*model.User, error)); ok {
		return rf(ctx, db, username)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, string) *model.User); ok {
		r0 = rf(ctx, db, username)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, string) error); ok {
		r1 = rf(ctx, db, username)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ExistsByUsername provides a mock function with given fields: ctx, db, username
func (_m *UserRepository) ExistsByUsername(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	ret := _m.Called(ctx, db, username)

	if len(ret) == 0 {
		panic("no return value specified for ExistsByUsername")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, string) (bool, error)); ok {
		return rf(ctx, db, username)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, string) bool); ok {
		r0 = rf(ctx, db, username)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, string) error); ok {
		r1 = rf(ctx, db, username)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ExistsByEmail provides a mock function with given fields: ctx, db, email
func (_m *UserRepository) ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	ret := _m.Called(ctx, db, email)

	if len(ret) == 0 {
		panic("no return value specified for ExistsByEmail")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, string) (bool, error)); ok {
		return rf(ctx, db, email)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, string) bool); ok {
		r0 = rf(ctx, db, email)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, string) error); ok {
		r1 = rf(ctx, db, email)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ExistsByNickname provides a mock function with given fields: ctx, db, nickname
func (_m *UserRepository) ExistsByNickname(ctx context.Context, db *gorm.DB, nickname string) (bool, error) {
	ret := _m.Called(ctx, db, nickname)

	if len(ret) == 0 {
		panic("no return value specified for ExistsByNickname")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, string) (bool, error)); ok {
		return rf(ctx, db, nickname)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, string) bool); ok {
		r0 = rf(ctx, db, nickname)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, string) error); ok {
		r1 = rf(ctx, db, nickname)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, db, user
func (_m *UserRepository) Update(ctx context.Context, db *gorm.DB, user *model.User) error {
	ret := _m.Called(ctx, db, user)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, *model.User) error); ok {
		r0 = rf(ctx, db, user)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindDeletedBefore provides a mock function with given fields: ctx, db, before
func (_m *UserRepository) FindDeletedBefore(ctx context.Context, db *gorm.DB, before time.Time) ([]*model.User, error) {
	ret := _m.Called(ctx, db, before)

	if len(ret) == 0 {
		panic("no return value specified for FindDeletedBefore")
	}

	var r0 []*model.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, time.Time) ([]*model.User, error)); ok {
		return rf(ctx, db, before)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, time.Time) []*model.User); ok {
		r0 = rf(ctx, db, before)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, time.Time) error); ok {
		r1 = rf(ctx, db, before)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// HardDelete provides a mock function with given fields: ctx, db, userID
func (_m *UserRepository) HardDelete(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	ret := _m.Called(ctx, db, userID)

	if len(ret) == 0 {
		panic("no return value specified for HardDelete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) error); ok {
		r0 = rf(ctx, db, userID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewUserRepository creates a new instance of UserRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

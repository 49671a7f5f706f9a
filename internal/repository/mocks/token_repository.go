package mocks

import (
	"context"

	"nihongo_diary/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// TokenRepository is an autogenerated mock type for the TokenRepository type
type TokenRepository struct {
	mock.Mock
}

// ReplaceRefreshToken provides a mock function with given fields: ctx, db, token
func (_m *TokenRepository) ReplaceRefreshToken(ctx context.Context, db *gorm.DB, token *model.RefreshToken) error {
	ret := _m.Called(ctx, db, token)

	if len(ret) == 0 {
		panic("no return value specified for ReplaceRefreshToken")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, *model.RefreshToken) error); ok {
		r0 = rf(ctx, db, token)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindRefreshToken provides a mock function with given fields: ctx, db, token
func (_m *TokenRepository) FindRefreshToken(ctx context.Context, db *gorm.DB, token string) (*model.RefreshToken, error) {
	ret := _m.Called(ctx, db, token)

	if len(ret) == 0 {
		panic("no return value specified for FindRefreshToken")
	}

	var r0 *model.RefreshToken
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, string) (*model.RefreshToken, error)); ok {
		return rf(ctx, db, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, string) *model.RefreshToken); ok {
		r0 = rf(ctx, db, token)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.RefreshToken)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, string) error); ok {
		r1 = rf(ctx, db, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteRefreshTokensByUser provides a mock function with given fields: ctx, db, userID
func (_m *TokenRepository) DeleteRefreshTokensByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	ret := _m.Called(ctx, db, userID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteRefreshTokensByUser")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) error); ok {
		r0 = rf(ctx, db, userID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewTokenRepository creates a new instance of TokenRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewTokenRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenRepository {
	m := &TokenRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

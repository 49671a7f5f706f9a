package mocks

import (
	"context"

	"nihongo_diary/internal/model"

	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// DiaryService is an autogenerated mock type for the DiaryService type
type DiaryService struct {
	mock.Mock
}

// CreateDiary provides a mock function with given fields: ctx, userID, req
func (_m *DiaryService) CreateDiary(ctx context.Context, userID uuid.UUID, req *model.DiaryRequest) (*model.DiaryResponse, error) {
	ret := _m.Called(ctx, userID, req)

	if len(ret) == 0 {
		panic("no return value specified for CreateDiary")
	}

	var r0 *model.DiaryResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *model.DiaryRequest) (*model.DiaryResponse, error)); ok {
		return rf(ctx, userID, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *model.DiaryRequest) *model.DiaryResponse); ok {
		r0 = rf(ctx, userID, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.DiaryResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *model.DiaryRequest) error); ok {
		r1 = rf(ctx, userID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetPublicDiaries provides a mock function with given fields: ctx
func (_m *DiaryService) GetPublicDiaries(ctx context.Context) ([]*model.DiaryListResponse, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetPublicDiaries")
	}

	var r0 []*model.DiaryListResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*model.DiaryListResponse, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*model.DiaryListResponse); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.DiaryListResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetMyDiaries provides a mock function with given fields: ctx, userID
func (_m *DiaryService) GetMyDiaries(ctx context.Context, userID uuid.UUID) ([]*model.DiaryListResponse, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetMyDiaries")
	}

	var r0 []*model.DiaryListResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*model.DiaryListResponse, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*model.DiaryListResponse); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.DiaryListResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetDiary provides a mock function with given fields: ctx, diaryID, viewerID
func (_m *DiaryService) GetDiary(ctx context.Context, diaryID uuid.UUID, viewerID *uuid.UUID) (*model.DiaryResponse, error) {
	ret := _m.Called(ctx, diaryID, viewerID)

	if len(ret) == 0 {
		panic("no return value specified for GetDiary")
	}

	var r0 *model.DiaryResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *uuid.UUID) (*model.DiaryResponse, error)); ok {
		return rf(ctx, diaryID, viewerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *uuid.UUID) *model.DiaryResponse); ok {
		r0 = rf(ctx, diaryID, viewerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.DiaryResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *uuid.UUID) error); ok {
		r1 = rf(ctx, diaryID, viewerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateDiary provides a mock function with given fields: ctx, userID, diaryID, req
func (_m *DiaryService) UpdateDiary(ctx context.Context, userID uuid.UUID, diaryID uuid.UUID, req *model.DiaryRequest) (*model.DiaryResponse, error) {
	ret := _m.Called(ctx, userID, diaryID, req)

	if len(ret) == 0 {
		panic("no return value specified for UpdateDiary")
	}

	var r0 *model.DiaryResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, *model.DiaryRequest) (*model.DiaryResponse, error)); ok {
		return rf(ctx, userID, diaryID, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, *model.DiaryRequest) *model.DiaryResponse); ok {
		r0 = rf(ctx, userID, diaryID, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.DiaryResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, *model.DiaryRequest) error); ok {
		r1 = rf(ctx, userID, diaryID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteDiary provides a mock function with given fields: ctx, userID, diaryID
func (_m *DiaryService) DeleteDiary(ctx context.Context, userID uuid.UUID, diaryID uuid.UUID) error {
	ret := _m.Called(ctx, userID, diaryID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteDiary")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r0 = rf(ctx, userID, diaryID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetDiaryWords provides a mock function with given fields: ctx, diaryID, viewerID
func (_m *DiaryService) GetDiaryWords(ctx context.Context, diaryID uuid.UUID, viewerID *uuid.UUID) ([]*model.DiaryWord, error) {
	ret := _m.Called(ctx, diaryID, viewerID)

	if len(ret) == 0 {
		panic("no return value specified for GetDiaryWords")
	}

	var r0 []*model.DiaryWord
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *uuid.UUID) ([]*model.DiaryWord, error)); ok {
		return rf(ctx, diaryID, viewerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *uuid.UUID) []*model.DiaryWord); ok {
		r0 = rf(ctx, diaryID, viewerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.DiaryWord)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *uuid.UUID) error); ok {
		r1 = rf(ctx, diaryID, viewerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewDiaryService creates a new instance of DiaryService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewDiaryService(t interface {
	mock.TestingT
	Cleanup(func())
}) *DiaryService {
	m := &DiaryService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

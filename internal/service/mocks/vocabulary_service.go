package mocks

import (
	"context"

	"nihongo_diary/internal/model"

	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// VocabularyService is an autogenerated mock type for the VocabularyService type
type VocabularyService struct {
	mock.Mock
}

// CreateVocabulary provides a mock function with given fields: ctx, userID, req
func (_m *VocabularyService) CreateVocabulary(ctx context.Context, userID uuid.UUID, req *model.VocabularyCreateRequest) (*model.VocabularyResponse, error) {
	ret := _m.Called(ctx, userID, req)

	if len(ret) == 0 {
		panic("no return value specified for CreateVocabulary")
	}

	var r0 *model.VocabularyResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *model.VocabularyCreateRequest) (*model.VocabularyResponse, error)); ok {
		return rf(ctx, userID, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *model.VocabularyCreateRequest) *model.VocabularyResponse); ok {
		r0 = rf(ctx, userID, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.VocabularyResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *model.VocabularyCreateRequest) error); ok {
		r1 = rf(ctx, userID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetMyVocabularies provides a mock function with given fields: ctx, userID
func (_m *VocabularyService) GetMyVocabularies(ctx context.Context, userID uuid.UUID) ([]*model.VocabularyResponse, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetMyVocabularies")
	}

	var r0 []*model.VocabularyResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*model.VocabularyResponse, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*model.VocabularyResponse); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.VocabularyResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetVocabulariesByStatus provides a mock function with given fields: ctx, userID, status
func (_m *VocabularyService) GetVocabulariesByStatus(ctx context.Context, userID uuid.UUID, status model.StudyStatus) ([]*model.VocabularyResponse, error) {
	ret := _m.Called(ctx, userID, status)

	if len(ret) == 0 {
		panic("no return value specified for GetVocabulariesByStatus")
	}

	var r0 []*model.VocabularyResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, model.StudyStatus) ([]*model.VocabularyResponse, error)); ok {
		return rf(ctx, userID, status)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, model.StudyStatus) []*model.VocabularyResponse); ok {
		r0 = rf(ctx, userID, status)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.VocabularyResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, model.StudyStatus) error); ok {
		r1 = rf(ctx, userID, status)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SearchVocabularies provides a mock function with given fields: ctx, userID, keyword
func (_m *VocabularyService) SearchVocabularies(ctx context.Context, userID uuid.UUID, keyword string) ([]*model.VocabularyResponse, error) {
	ret := _m.Called(ctx, userID, keyword)

	if len(ret) == 0 {
		panic("no return value specified for SearchVocabularies")
	}

	var r0 []*model.VocabularyResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) ([]*model.VocabularyResponse, error)); ok {
		return rf(ctx, userID, keyword)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) []*model.VocabularyResponse); ok {
		r0 = rf(ctx, userID, keyword)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.VocabularyResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, string) error); ok {
		r1 = rf(ctx, userID, keyword)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetVocabulary provides a mock function with given fields: ctx, userID, vocabID
func (_m *VocabularyService) GetVocabulary(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID) (*model.VocabularyResponse, error) {
	ret := _m.Called(ctx, userID, vocabID)

	if len(ret) == 0 {
		panic("no return value specified for GetVocabulary")
	}

	var r0 *model.VocabularyResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (*model.VocabularyResponse, error)); ok {
		return rf(ctx, userID, vocabID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *model.VocabularyResponse); ok {
		r0 = rf(ctx, userID, vocabID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.VocabularyResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, userID, vocabID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateVocabulary provides a mock function with given fields: ctx, userID, vocabID, req
func (_m *VocabularyService) UpdateVocabulary(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID, req *model.VocabularyUpdateRequest) (*model.VocabularyResponse, error) {
	ret := _m.Called(ctx, userID, vocabID, req)

	if len(ret) == 0 {
		panic("no return value specified for UpdateVocabulary")
	}

	var r0 *model.VocabularyResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, *model.VocabularyUpdateRequest) (*model.VocabularyResponse, error)); ok {
		return rf(ctx, userID, vocabID, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, *model.VocabularyUpdateRequest) *model.VocabularyResponse); ok {
		r0 = rf(ctx, userID, vocabID, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.VocabularyResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, *model.VocabularyUpdateRequest) error); ok {
		r1 = rf(ctx, userID, vocabID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateStudyStatus provides a mock function with given fields: ctx, userID, vocabID, status
func (_m *VocabularyService) UpdateStudyStatus(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID, status model.StudyStatus) (*model.VocabularyResponse, error) {
	ret := _m.Called(ctx, userID, vocabID, status)

	if len(ret) == 0 {
		panic("no return value specified for UpdateStudyStatus")
	}

	var r0 *model.VocabularyResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, model.StudyStatus) (*model.VocabularyResponse, error)); ok {
		return rf(ctx, userID, vocabID, status)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, model.StudyStatus) *model.VocabularyResponse); ok {
		r0 = rf(ctx, userID, vocabID, status)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.VocabularyResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, model.StudyStatus) error); ok {
		r1 = rf(ctx, userID, vocabID, status)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteVocabulary provides a mock function with given fields: ctx, userID, vocabID
func (_m *VocabularyService) DeleteVocabulary(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID) error {
	ret := _m.Called(ctx, userID, vocabID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteVocabulary")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r0 = rf(ctx, userID, vocabID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewVocabularyService creates a new instance of VocabularyService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewVocabularyService(t interface {
	mock.TestingT
	Cleanup(func())
}) *VocabularyService {
	m := &VocabularyService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

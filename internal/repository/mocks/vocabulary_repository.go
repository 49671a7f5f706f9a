package mocks

import (
	"context"

	"nihongo_diary/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// VocabularyRepository is an autogenerated mock type for the VocabularyRepository type
type VocabularyRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, db, vocab
func (_m *VocabularyRepository) Create(ctx context.Context, db *gorm.DB, vocab *model.Vocabulary) error {
	ret := _m.Called(ctx, db, vocab)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, *model.Vocabulary) error); ok {
		r0 = rf(ctx, db, vocab)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByID provides a mock function with given fields: ctx, db, vocabID
func (_m *VocabularyRepository) FindByID(ctx context.Context, db *gorm.DB, vocabID uuid.UUID) (*model.Vocabulary, error) {
	ret := _m.Called(ctx, db, vocabID)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *model.Vocabulary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) (*model.Vocabulary, error)); ok {
		return rf(ctx, db, vocabID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) *model.Vocabulary); ok {
		r0 = rf(ctx, db, vocabID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Vocabulary)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, uuid.UUID) error); ok {
		r1 = rf(ctx, db, vocabID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByUser provides a mock function with given fields: ctx, db, userID
func (_m *VocabularyRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Vocabulary, error) {
	ret := _m.Called(ctx, db, userID)

	if len(ret) == 0 {
		panic("no return value specified for FindByUser")
	}

	var r0 []*model.Vocabulary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) ([]*model.Vocabulary, error)); ok {
		return rf(ctx, db, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) []*model.Vocabulary); ok {
		r0 = rf(ctx, db, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Vocabulary)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, uuid.UUID) error); ok {
		r1 = rf(ctx, db, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByUserAndStatus provides a mock function with given fields: ctx, db, userID, status
func (_m *VocabularyRepository) FindByUserAndStatus(ctx context.Context, db *gorm.DB, userID uuid.UUID, status model.StudyStatus) ([]*model.Vocabulary, error) {
	ret := _m.Called(ctx, db, userID, status)

	if len(ret) == 0 {
		panic("no return value specified for FindByUserAndStatus")
	}

	var r0 []*model.Vocabulary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID, model.StudyStatus) ([]*model.Vocabulary, error)); ok {
		return rf(ctx, db, userID, status)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID, model.StudyStatus) []*model.Vocabulary); ok {
		r0 = rf(ctx, db, userID, status)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Vocabulary)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, uuid.UUID, model.StudyStatus) error); ok {
		r1 = rf(ctx, db, userID, status)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Search provides a mock function with given fields: ctx, db, userID, keyword
func (_m *VocabularyRepository) Search(ctx context.Context, db *gorm.DB, userID uuid.UUID, keyword string) ([]*model.Vocabulary, error) {
	ret := _m.Called(ctx, db, userID, keyword)

	if len(ret) == 0 {
		panic("no return value specified for Search")
	}

	var r0 []*model.Vocabulary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID, string) ([]*model.Vocabulary, error)); ok {
		return rf(ctx, db, userID, keyword)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID, string) []*model.Vocabulary); ok {
		r0 = rf(ctx, db, userID, keyword)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Vocabulary)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *gorm.DB, uuid.UUID, string) error); ok {
		r1 = rf(ctx, db, userID, keyword)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, db, vocabID, updates
func (_m *VocabularyRepository) Update(ctx context.Context, db *gorm.DB, vocabID uuid.UUID, updates map[string]interface{}) error {
	ret := _m.Called(ctx, db, vocabID, updates)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID, map[string]interface{}) error); ok {
		r0 = rf(ctx, db, vocabID, updates)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Delete provides a mock function with given fields: ctx, db, vocabID
func (_m *VocabularyRepository) Delete(ctx context.Context, db *gorm.DB, vocabID uuid.UUID) error {
	ret := _m.Called(ctx, db, vocabID)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *gorm.DB, uuid.UUID) error); ok {
		r0 = rf(ctx, db, vocabID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewVocabularyRepository creates a new instance of VocabularyRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewVocabularyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *VocabularyRepository {
	m := &VocabularyRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

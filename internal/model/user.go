package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusDeleted   UserStatus = "DELETED"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// User はアプリケーションの利用者です
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string     `gorm:"not null" json:"-"` // bcryptハッシュ
	Email     string     `gorm:"size:50;uniqueIndex;not null" json:"email"`
	Nickname  string     `gorm:"size:50;uniqueIndex;not null" json:"nickname"`
	Role      Role       `gorm:"size:20;not null;default:USER" json:"role"`
	Status    UserStatus `gorm:"size:20;not null;default:ACTIVE;index" json:"status"`
	DeletedAt *time.Time `gorm:"index" json:"-"` // 退会日時 (論理削除)
	CreatedAt time.Time  `json:"createDate"`
	UpdatedAt time.Time  `json:"modifyDate"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

type ContextKey string

const (
	UserIDKey   ContextKey = "userID"
	UserRoleKey ContextKey = "userRole"
)

// UserInfo はログインユーザー情報のレスポンスDTO
type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Nickname string    `json:"nickname"`
	Role     Role      `json:"role"`
}

func NewUserInfo(u *User) *UserInfo {
	return &UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Nickname: u.Nickname,
		Role:     u.Role,
	}
}

// UpdateProfileRequest はプロフィール更新リクエスト
type UpdateProfileRequest struct {
	Nickname string `json:"nickname" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email,max=50"`
}

// ChangePasswordRequest はパスワード変更リクエスト
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"currentPassword" validate:"required"`
	NewPassword        string `json:"newPassword" validate:"required,min=6,max=20"`
	NewPasswordConfirm string `json:"newPasswordConfirm" validate:"required"`
}

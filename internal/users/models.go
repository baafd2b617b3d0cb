package users

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func IsValidRole(role string) bool {
	switch role {
	case string(RoleUser), string(RoleAdmin):
		return true
	default:
		return false
	}
}

type User struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, hidden in json
	FullName  string    `json:"full_name" gorm:"not null;size:255"`
	Phone     string    `json:"phone" gorm:"size:50"`
	City      string    `json:"city" gorm:"size:120"`
	AvatarURL string    `json:"avatar_url" gorm:"size:500"`
	Role      Role      `json:"role" gorm:"type:varchar(10);not null;default:'user'"`

	FavoriteCategories []string `json:"favorite_categories" gorm:"serializer:json;type:jsonb"`
	FavoriteEvents     []string `json:"favorite_events" gorm:"serializer:json;type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserResponse is the wire shape of a profile (no password hash)
type UserResponse struct {
	ID                 string   `json:"id"`
	Email              string   `json:"email"`
	FullName           string   `json:"full_name"`
	Phone              string   `json:"phone"`
	City               string   `json:"city"`
	AvatarURL          string   `json:"avatar_url"`
	Role               string   `json:"role"`
	FavoriteCategories []string `json:"favorite_categories"`
	FavoriteEvents     []string `json:"favorite_events"`
}

// UpdateProfileRequest carries a partial profile update. Nil fields stay as-is;
// favorite lists are replaced wholesale (last write wins).
type UpdateProfileRequest struct {
	FullName           *string   `json:"full_name" binding:"omitempty,min=2,max=255"`
	Phone              *string   `json:"phone" binding:"omitempty,max=50"`
	City               *string   `json:"city" binding:"omitempty,max=120"`
	AvatarURL          *string   `json:"avatar_url" binding:"omitempty,url"`
	FavoriteCategories []string  `json:"favorite_categories"`
	FavoriteEvents     *[]string `json:"favorite_events"`
}

func (u *User) ToResponse() UserResponse {
	favCategories := u.FavoriteCategories
	if favCategories == nil {
		favCategories = []string{}
	}
	favEvents := u.FavoriteEvents
	if favEvents == nil {
		favEvents = []string{}
	}

	return UserResponse{
		ID:                 u.ID.String(),
		Email:              u.Email,
		FullName:           u.FullName,
		Phone:              u.Phone,
		City:               u.City,
		AvatarURL:          u.AvatarURL,
		Role:               string(u.Role),
		FavoriteCategories: favCategories,
		FavoriteEvents:     favEvents,
	}
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

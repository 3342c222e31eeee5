package models

import "time"

type User struct {
	ID                uint       `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Password          string     `json:"password,omitempty"` // bcrypt hash
	IsAdmin           bool       `json:"isAdmin"`
	ProfileImage      *string    `json:"profileImage"`
	CreatedAt         time.Time  `json:"createdAt"`
	PasswordUpdatedAt *time.Time `json:"passwordUpdatedAt,omitempty"`
}

func (u User) GetID() uint { return u.ID }

// SanitizedUser is the client-facing view of a User, without the password hash.
type SanitizedUser struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	IsAdmin      bool      `json:"isAdmin"`
	ProfileImage *string   `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u User) Sanitize() SanitizedUser {
	return SanitizedUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		IsAdmin:      u.IsAdmin,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
	}
}

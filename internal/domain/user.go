package domain

import "github.com/google/uuid"

// User is a credential holder. The password is never serialized.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// UserInsert is the pre-creation shape of a user.
type UserInsert struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// NewUser builds a user from its insert shape.
func NewUser(insert UserInsert) User {
	return User{
		ID:       uuid.New().String(),
		Username: insert.Username,
		Password: insert.Password,
	}
}

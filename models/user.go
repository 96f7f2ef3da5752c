package models

import (
	"time"
)

// User is the stored user record
type User struct {
	ID          int        `json:"id" db:"id"`
	Forename    string     `json:"forename" db:"forename"`
	Surname     string     `json:"surname" db:"surname"`
	Email       string     `json:"email" db:"email"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	IsActive    bool       `json:"is_active" db:"is_active"`
}

// FullName returns "<forename> <surname>"
func (u *User) FullName() string {
	return u.Forename + " " + u.Surname
}

// UserForm represents form data for creating/updating users
type UserForm struct {
	ID          int        `json:"id"`
	Forename    string     `json:"forename" validate:"required,max=100"`
	Surname     string     `json:"surname" validate:"required,max=100"`
	Email       string     `json:"email" validate:"required,max=255,email"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" validate:"omitempty,birthdate"`
	IsActive    bool       `json:"is_active"`
}

// UserSummary is the list-view projection of a user
type UserSummary struct {
	ID          int        `json:"id"`
	Forename    string     `json:"forename"`
	Surname     string     `json:"surname"`
	Email       string     `json:"email"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	IsActive    bool       `json:"is_active"`
}

// UserDetail is the detail-view projection of a user along with its audit history
type UserDetail struct {
	ID          int          `json:"id"`
	Forename    string       `json:"forename"`
	Surname     string       `json:"surname"`
	Email       string       `json:"email"`
	DateOfBirth *time.Time   `json:"date_of_birth,omitempty"`
	IsActive    bool         `json:"is_active"`
	Logs        []LogSummary `json:"logs"`
}

// OperationResult reports the outcome of a mutating user operation.
// Recoverable failures (validation, not found) are carried in Errors.
type OperationResult struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors,omitempty"`
}

// Succeeded returns a successful result
func Succeeded() *OperationResult {
	return &OperationResult{Success: true}
}

// Failed returns a failed result carrying the given messages
func Failed(messages ...string) *OperationResult {
	return &OperationResult{Success: false, Errors: messages}
}

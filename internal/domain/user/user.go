package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type User struct {
	id          uint
	username    string
	email       string
	displayName string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewUser(username, email, displayName string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 150 {
		return nil, fmt.Errorf("username exceeds maximum length of 150 characters")
	}
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("invalid email address")
	}

	if displayName == "" {
		displayName = username
	}

	now := time.Now()
	return &User{
		username:    username,
		email:       email,
		displayName: displayName,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructUser(id uint, username, email, displayName string, active bool, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:          id,
		username:    username,
		email:       email,
		displayName: displayName,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) Email() string        { return u.email }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) IsActive() bool       { return u.active }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now()
}

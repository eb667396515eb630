// Package models defines the data shared by the chat client components.
package models

import "github.com/dmitrijs2005/cleazy-chat/internal/common"

// User is a row of the remote users table. Password is kept in plaintext.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// IsAdmin reports whether u is the reserved admin account.
func (u *User) IsAdmin() bool {
	return u != nil && u.Username == common.AdminUsername
}

// NewUser is the payload of the admin "add user" form.
type NewUser struct {
	Username string
	Password string
}

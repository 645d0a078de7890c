// Package models contains the client-side data model.
package models

import "time"

// User is an account as the client sees it. Values are treated as immutable:
// profile updates build a new User rather than mutating one in place.
//
// ID is assigned by the identity provider and is never empty once a User
// exists.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	IsVerified  bool      `json:"isVerified"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WithProfile returns a copy of u with the updatable profile fields replaced.
func (u User) WithProfile(username, phoneNumber string, isVerified bool) User {
	u.Username = username
	u.PhoneNumber = phoneNumber
	u.IsVerified = isVerified
	return u
}

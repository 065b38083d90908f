package models

import "time"

// User represents a registered account in the system.
type User struct {
	ID      string  `json:"id"`
	Email   string  `json:"email"`
	Account Account `json:"account"`
	// Token is the opaque bearer credential issued once at signup. It is
	// never rotated; login hands back the same value.
	Token     string    `json:"-"`
	Hash      string    `json:"-"` // Never expose this to the client
	Salt      string    `json:"-"`
	Rooms     []string  `json:"rooms"` // ids of rooms owned by this user, in creation order
	CreatedAt time.Time `json:"createdAt"`
}

// Account holds the profile fields attached to a user.
type Account struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	Description string `json:"description,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// PublicAccount is the owner profile embedded in room responses.
type PublicAccount struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// AuthResponse is the shape returned by both signup and login.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Description string `json:"description"`
}

package models

import "time"

// StudentDB represents a student record in the database
type StudentDB struct {
	ID           int64     `json:"id" db:"id"`                     // Primary key
	Username     string    `json:"username" db:"username"`         // Unique username, 3-15 characters
	PasswordHash string    `json:"-" db:"password_hash"`           // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// Student is the public identity of an account as returned by the API.
// It carries no password material at all.
type Student struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Identity converts a database row into the public identity.
func (s *StudentDB) Identity() *Student {
	return &Student{ID: s.ID, Username: s.Username}
}

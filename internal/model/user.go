package model

import "time"

// User is a registered campus user who can file reports.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

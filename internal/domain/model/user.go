package model

import "time"

// User represents a registered customer of the store.
type User struct {
	ID        int64
	Email     string
	Phone     string
	Image     string
	FirstName string
	LastName  string
	Gender    string
	Address   string
	Country   string
	City      string
	ZipCode   string
	CreatedAt time.Time
}

package model

// Payment is an accepted payment method.
type Payment struct {
	ID          int64
	Name        string
	Description string
	Status      int16
}

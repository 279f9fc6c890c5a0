package dto

// ErrorResponse carries a human readable error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse reports simple success/failure outcomes.
type StatusResponse struct {
	Status bool `json:"status"`
}

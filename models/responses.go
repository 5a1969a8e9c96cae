package models

// ErrorResponse is the JSON body written by the panic-recovery middleware
// for unhandled faults.
type ErrorResponse struct {
	Error string `json:"error"`
}

package model

// DecodeError records a decode failure for a single record envelope.
// Extraction keeps going past these; they are reported alongside the
// successfully decoded records.
type DecodeError struct {
	Index       int    `json:"index"`
	Name        string `json:"name,omitempty"`
	PayloadSize int    `json:"payload_size"`
	Error       string `json:"error"`
}

package authapi

import "time"

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile is the registration request body. Client-only fields such as the
// password confirmation and the terms checkbox never appear here.
type Profile struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dob"`
	Gender      string `json:"gender"`
	Password    string `json:"password"`
}

// Payload is the recognized shape of a server response body. Success bodies
// carry Message and optionally Token; failure bodies carry either per-field
// Errors or a general Message.
type Payload struct {
	Message string            `json:"message,omitempty"`
	Token   string            `json:"token,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// SubmissionResult is the outcome of a request that produced an HTTP
// response. Ordinary failure statuses are results, not errors; only
// transport-level problems surface as Go errors.
type SubmissionResult struct {
	// StatusCode is the raw HTTP status.
	StatusCode int
	// OK is true for any 2xx status. No individual code is special-cased.
	OK bool
	// Payload is the parsed body, or nil when the body was empty or not
	// recognizable as the Payload shape.
	Payload *Payload
	// RequestID echoes the X-Request-ID sent with the request.
	RequestID string
	// Duration measures the full request/response exchange.
	Duration time.Duration
}

package models

import "errors"

// Credentials are sent to both signup and login.
type Credentials struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// ValidateLogin requires both fields.
func (c Credentials) ValidateLogin() error {
	if c.Nickname == "" {
		return invalid("nickname", "Nickname is required")
	}
	if c.Password == "" {
		return invalid("password", "Password is required")
	}
	return nil
}

// ValidateSignup applies the account creation rules: nickname of at least
// 3 characters, password of at least 6, and a matching confirmation.
func (c Credentials) ValidateSignup(confirm string) error {
	switch {
	case c.Nickname == "":
		return invalid("nickname", "Nickname is required")
	case len([]rune(c.Nickname)) < 3:
		return invalid("nickname", "Nickname must be at least 3 characters")
	case c.Password == "":
		return invalid("password", "Password is required")
	case len(c.Password) < 6:
		return invalid("password", "Password must be at least 6 characters")
	case c.Password != confirm:
		return invalid("confirmPassword", "Passwords do not match")
	}
	return nil
}

// AuthResponse is the success body of signup and login.
type AuthResponse struct {
	Token   string   `json:"token"`
	Message string   `json:"message,omitempty"`
	User    *Profile `json:"user,omitempty"`
}

func (r *AuthResponse) Validate() error {
	if r.Token == "" {
		return errors.New("token is empty")
	}
	if r.User != nil {
		return r.User.Validate()
	}
	return nil
}

// UserDetails is the body of the user details endpoint.
type UserDetails struct {
	User *Profile `json:"user"`
}

func (d *UserDetails) Validate() error {
	return d.User.Validate()
}

// SubmissionResult is the success body of an onboarding submission. The
// server may echo the updated user; anything else is ignored.
type SubmissionResult struct {
	Message string   `json:"message,omitempty"`
	User    *Profile `json:"user,omitempty"`
}

func (r *SubmissionResult) Validate() error {
	if r.User != nil {
		return r.User.Validate()
	}
	return nil
}

// Health is the body of the health check endpoint.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

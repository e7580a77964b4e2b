// Package common contains shared constants and sentinel errors used across
// the SleepCoach client.
package common

// Outbound request headers.
const (
	AuthorizationHeaderName = "Authorization"
	ContentTypeHeaderName   = "Content-Type"
	RequestIDHeaderName     = "X-Request-ID"

	BearerPrefix    = "Bearer "
	JSONContentType = "application/json"
)

// Keys of the two local session entries.
const (
	TokenKey   = "authToken"
	ProfileKey = "userInfo"
)

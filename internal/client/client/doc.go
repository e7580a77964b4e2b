// Package client contains the client-side building blocks that talk to the
// SleepCoach backend.
//
// # Overview
//
//  1. The Client interface: one method per remote operation (signup, login,
//     the four onboarding screens, completion, user details, analytics,
//     health).
//  2. HTTPClient, the JSON-over-HTTP implementation. It attaches the bearer
//     token supplied by a TokenSource, tags every request with an
//     X-Request-ID and validates success bodies at the boundary.
//  3. InitDatabase and RunMigrations, which prepare the local SQLite database
//     holding the session entries.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses are *APIError,
// whose message is taken from the body's "message" field when present.
// Success bodies that do not decode or validate are *MalformedResponseError.
// Use errors.Is with ErrUnavailable, ErrUnauthorized and ErrMalformedResponse.
//
// There are no retries: each call is issued once.
package client

package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sleepcoach/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo describes the stored token as far as it can be read locally.
// The signature is never checked and expiry is informational only.
type TokenInfo struct {
	JWT       bool
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that has passed.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

func (i TokenInfo) String() string {
	if !i.JWT {
		return "not a JWT"
	}
	s := "subject " + i.Subject
	if !i.ExpiresAt.IsZero() {
		s += ", expires " + i.ExpiresAt.Format(time.RFC3339)
	}
	return s
}

// TokenInfo decodes the claims of the stored token. It returns
// common.ErrNoSession when no token is stored. A token that is not a JWT is
// not an error; it yields a TokenInfo with JWT false.
func (s *Store) TokenInfo(ctx context.Context) (TokenInfo, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return TokenInfo{}, err
	}
	if token == "" {
		return TokenInfo{}, common.ErrNoSession
	}
	return parseTokenInfo(token), nil
}

func parseTokenInfo(token string) TokenInfo {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}
	}

	info := TokenInfo{JWT: true, Subject: claims.Subject}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info
}

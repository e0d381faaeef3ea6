package session

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the server's job, the client only wants to
// avoid restoring a session it knows is dead. Tokens that are not JWTs
// stay opaque and are never treated as expired here.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Unix(int64(exp), 0).Before(now)
}

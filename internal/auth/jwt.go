package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// secretKey resolves the signing key from the environment on every call,
// so a JWT_SECRET loaded from .env after process start is honored. The
// dev fallback keeps the API bootable without a .env file.
func secretKey() []byte {
	if key := os.Getenv("JWT_SECRET"); key != "" {
		return []byte(key)
	}
	return []byte("A_VERY_SECURE_SECRET_KEY_REPLACE_LATER")
}

// TokenTTL is how long an access token stays valid after login/register.
const TokenTTL = 30 * time.Minute

var (
	// ErrTokenExpired means the token was well-formed and correctly
	// signed but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other validation failure: bad
	// signature, wrong algorithm, malformed string, missing subject.
	ErrTokenInvalid = errors.New("invalid token")
)

// GenerateToken creates a signed JWT for a given user email.
func GenerateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,                           // subject is the user's email
		"exp": time.Now().Add(TokenTTL).Unix(), // expires in 30 minutes
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey())
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token string and returns the
// subject email. Expired tokens report ErrTokenExpired; every other
// failure reports ErrTokenInvalid.
func ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with a different algorithm family.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrTokenInvalid
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", ErrTokenInvalid
	}

	return email, nil
}

package integration

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestUser is an authenticated caller of the running service
type TestUser struct {
	UserID int
	Token  string
}

// NewTestUser mints an access token for a user id that has no stored profile.
// Tokens are signed with JWT_SECRET, the same secret the service is started with.
func NewTestUser() (*TestUser, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	userID := int(time.Now().UnixNano()%1_000_000_000) + 1_000_000_000
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"type":    "access",
		"exp":     time.Now().Add(15 * time.Minute).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &TestUser{UserID: userID, Token: signed}, nil
}

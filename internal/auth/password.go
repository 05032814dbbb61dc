package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a valid bcrypt hash compared against when a username does
// not exist, so a login attempt costs the same bcrypt work whether or not
// the user is registered.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// HashPassword creates a bcrypt hash of the given plaintext password.
// The cost is the configured work factor; higher costs make brute-force
// attacks more expensive at the price of slower logins.
func HashPassword(password string, cost int) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword checks the plaintext password against the stored bcrypt
// hash using bcrypt's constant-time comparison.
func VerifyPassword(hashedPassword, providedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(providedPassword))
}

// BurnPassword runs a bcrypt comparison against a throwaway hash. Called
// on lookups for unknown usernames to keep response timing level.
func BurnPassword(providedPassword string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(providedPassword))
}

package devicekey

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash of a terminal secret for storage at
// registration time.
func Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the presented secret matches the stored hash.
func Verify(hash string, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

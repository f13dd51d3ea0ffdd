package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tunecheck/config"
)

// HashPassword hashes a password with the configured scheme. The sha256
// scheme reproduces the hashes existing password rows were written with;
// bcrypt is the opt-in hardened scheme.
func HashPassword(password, scheme string) (string, error) {
	if scheme == config.PasswordSchemeBcrypt {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		return string(hashed), nil
	}
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// CheckPassword verifies a password against a stored hash. The scheme is
// recognized from the hash itself, so a scheme switch does not lock out
// users with hashes in the old format.
func CheckPassword(hash, password string) bool {
	if strings.HasPrefix(hash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	sum := sha256.Sum256([]byte(password))
	return subtle.ConstantTimeCompare([]byte(hash), []byte(hex.EncodeToString(sum[:]))) == 1
}

package utils

import "os"

// JWTSecret returns the token signing key. Signing and verification must
// share a single fallback, otherwise tokens minted while JWT_SECRET is
// unset never verify.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

package services

import (
	"crypto/rand"
	"fmt"
)

const (
	otpLength = 6
	// The legacy codes were base-6 strings, so only digits 0-5 appear.
	otpAlphabet = "012345"
)

// GenerateOTP returns a fixed-length numeric code for email verification and
// password reset. Uniqueness across users is not checked; collisions are
// accepted.
func GenerateOTP() (string, error) {
	buf := make([]byte, otpLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating otp: %w", err)
	}
	code := make([]byte, otpLength)
	for i, b := range buf {
		code[i] = otpAlphabet[int(b)%len(otpAlphabet)]
	}
	return string(code), nil
}

package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password with a fresh salt. It only fails on
// pathological input (bcrypt rejects passwords longer than 72 bytes); the
// error is surfaced to the caller, never retried.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored digest. Corrupt or
// unsupported digests count as a mismatch: callers must not be able to tell
// "wrong password" from "bad hash" apart.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

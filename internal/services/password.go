package services

import "golang.org/x/crypto/bcrypt"

// bcrypt ignores input beyond 72 bytes; truncate explicitly so hashing and
// verification agree on long passwords.
const bcryptMaxBytes = 72

func truncateForBcrypt(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxBytes {
		b = b[:bcryptMaxBytes]
	}
	return b
}

// HashPassword returns a salted bcrypt hash. Each call produces a different
// string for the same input.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncateForBcrypt(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword fails closed: a malformed hash or mismatch is simply false.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncateForBcrypt(password)) == nil
}

package sec

import "golang.org/x/crypto/bcrypt"

// hashCost pins the bcrypt cost factor so hashes stay comparable across
// library upgrades.
const hashCost = 10

// HashPassword generates a salted hash for the given password. Hashing the
// same password twice yields different hashes. It errors if the password is
// longer than 72 bytes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	return string(hash), err
}

// VerifyPassword reports whether the provided password resolves to the given
// hash. A malformed hash verifies as false rather than erroring.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

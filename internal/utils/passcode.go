package utils

import "golang.org/x/crypto/bcrypt"

// HashPasscode returns the bcrypt hash of a passcode using the given
// cost.  Used by the ops tooling that provisions AUTH_PASSCODE_HASH.
func HashPasscode(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPasscode safely compares a bcrypt hash and a plain passcode.
func VerifyPasscode(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

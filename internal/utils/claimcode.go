package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// ClaimCodeLength is the length of generated claim codes.
const ClaimCodeLength = 6

// Ambiguous characters (0/O, 1/I) are excluded; codes are read over the phone.
const claimCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateClaimCode returns a random alphanumeric code a pending-transfer
// recipient uses to claim reserved funds.
func GenerateClaimCode() (string, error) {
	code := make([]byte, ClaimCodeLength)
	max := big.NewInt(int64(len(claimCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = claimCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// HashClaimCode hashes a claim code for storage. The plaintext is shown to
// the sender once and never persisted.
func HashClaimCode(code string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyClaimCode checks a presented code against a stored hash.
func VerifyClaimCode(hash, code string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}

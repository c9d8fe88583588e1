package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

const sessionSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
const sessionSuffixLength = 5

// GenerateSessionID produces the wire-format session id: unix milliseconds,
// a dash, and five base36 characters. Collisions need the same millisecond
// and the same 1-in-36^5 suffix, which is low enough without coordination.
func GenerateSessionID() (string, error) {
	max := big.NewInt(int64(len(sessionSuffixAlphabet)))
	suffix := make([]byte, sessionSuffixLength)
	for i := range suffix {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = sessionSuffixAlphabet[num.Int64()]
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix), nil
}

func GenerateRequestID() string {
	return uuid.NewString()
}

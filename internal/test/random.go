package test

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	lowerAlnum    = "abcdefghijklmnopqrstuvwxyz0123456789"
	passwordChars = lowerAlnum + "ABCDEFGHIJKLMNOPQRSTUVWXYZ!#$%&*+-=?@^_"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Credentials is a generated registration payload.
type Credentials struct {
	Name     string
	Email    string
	Password string
}

// RandomCredentials returns a syntactically valid, pseudo-random account.
func RandomCredentials() Credentials {
	local := randomString(lowerAlnum, 5, 12)
	return Credentials{
		Name:     strings.ToUpper(local[:1]) + local[1:],
		Email:    local + "@" + randomString(lowerAlnum, 3, 8) + ".test",
		Password: randomString(passwordChars, 8, 32),
	}
}

func randomString(alphabet string, minLen, maxLen int) string {
	rngMu.Lock()
	defer rngMu.Unlock()
	length := minLen
	if maxLen > minLen {
		length += rng.Intn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(buf)
}

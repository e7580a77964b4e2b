package apitest

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// passwordHash is a salted argon2id key. The fake keeps no plain passwords
// so tests exercise the same comparison a real backend performs.
type passwordHash struct {
	salt []byte
	key  []byte
}

// argon2 parameters, lighter than production to keep tests fast.
const (
	argonTime    = 1
	argonMemory  = 8 * 1024
	argonThreads = 2
	argonKeyLen  = 32
)

func hashPassword(password string) passwordHash {
	salt := make([]byte, 16)
	_, _ = rand.Read(salt)
	return passwordHash{salt: salt, key: deriveKey(password, salt)}
}

func (h passwordHash) matches(password string) bool {
	return subtle.ConstantTimeCompare(h.key, deriveKey(password, h.salt)) == 1
}

func deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

package authn

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/json"
	"errors"

	"golang.org/x/crypto/argon2"
)

var ErrEmptyPassword = errors.New("empty password")

type argon2Params struct {
	// Stored alongside the hash so verification uses the original cost.
	Time    uint32 `json:"t"`
	Memory  uint32 `json:"m"`
	Threads uint8  `json:"p"`
	KeyLen  uint32 `json:"k"`
	SaltLen uint32 `json:"s"`
}

var currentParams = argon2Params{
	Time:    3,
	Memory:  64 * 1024, // 64 MiB
	Threads: 1,
	KeyLen:  32,
	SaltLen: 16,
}

const algoName = "argon2id"

// HashPassword derives an argon2id hash with the current policy. The params
// travel with the hash as JSON.
func HashPassword(password string) (hash, salt, paramsJSON []byte, algo string, err error) {
	if password == "" {
		return nil, nil, nil, "", ErrEmptyPassword
	}
	salt = make([]byte, currentParams.SaltLen)
	if _, err = rand.Read(salt); err != nil {
		return nil, nil, nil, "", err
	}
	hash = argon2.IDKey([]byte(password), salt, currentParams.Time, currentParams.Memory, currentParams.Threads, currentParams.KeyLen)
	paramsJSON, err = json.Marshal(currentParams)
	if err != nil {
		return nil, nil, nil, "", err
	}
	return hash, salt, paramsJSON, algoName, nil
}

// VerifyPassword checks a candidate against a stored hash in constant time.
func VerifyPassword(password string, hash, salt, paramsJSON []byte, algo string) bool {
	if algo != algoName || len(hash) == 0 {
		return false
	}
	var stored argon2Params
	if err := json.Unmarshal(paramsJSON, &stored); err != nil {
		return false
	}
	calculated := argon2.IDKey([]byte(password), salt, stored.Time, stored.Memory, stored.Threads, stored.KeyLen)
	return subtle.ConstantTimeCompare(calculated, hash) == 1
}

// Package password hashes and verifies credential secrets with bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost matches the salt rounds used for every stored credential.
const Cost = 10

// MaxLength is the longest secret bcrypt accepts, in bytes.
const MaxLength = 72

var ErrTooLong = bcrypt.ErrPasswordTooLong

type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

type bcryptHasher struct {
	cost int
}

func NewHasher() Hasher {
	return &bcryptHasher{cost: Cost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("empty password")
	}
	if len(plain) > MaxLength {
		return "", ErrTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *bcryptHasher) Verify(plain, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IsTooLong reports whether err rejects a secret for exceeding MaxLength.
func IsTooLong(err error) bool {
	return errors.Is(err, ErrTooLong)
}

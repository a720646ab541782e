// Package password hashes and verifies user passwords with argon2id.
//
// Hashes are stored in PHC string format so the salt and cost parameters
// travel with the hash:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	minMemoryKB    uint32 = 8 * 1024
	minTime        uint32 = 1
	minParallelism uint8  = 1
	minSaltLength  uint32 = 16
	minKeyLength   uint32 = 16

	algorithm = "argon2id"
)

var (
	ErrInvalidParams = errors.New("argon2 parameters below minimum")
	ErrInvalidHash   = errors.New("invalid password hash")
)

// Params are argon2id cost parameters. Memory is in KiB.
type Params struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams costs 64 MiB and one pass per hash.
func DefaultParams() Params {
	return Params{Memory: 64 * 1024, Time: 1, Parallelism: 4, SaltLength: 16, KeyLength: 32}
}

func (p Params) validate() error {
	if p.Memory < minMemoryKB || p.Time < minTime || p.Parallelism < minParallelism ||
		p.SaltLength < minSaltLength || p.KeyLength < minKeyLength {
		return ErrInvalidParams
	}
	return nil
}

type Argon2 struct {
	params Params
}

func NewArgon2(p Params) (*Argon2, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Argon2{params: p}, nil
}

// Hash derives a key from plaintext with a fresh random salt, so hashing the
// same password twice yields different strings.
func (a *Argon2) Hash(plaintext string) (string, error) {
	salt := make([]byte, a.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, a.params.Time, a.params.Memory, a.params.Parallelism, a.params.KeyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithm, argon2.Version,
		a.params.Memory, a.params.Time, a.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify recomputes the key with the parameters embedded in encoded and
// compares in constant time. A malformed hash is an error, a mismatch is not.
func (a *Argon2) Verify(plaintext, encoded string) (bool, error) {
	h, err := decode(encoded)
	if err != nil {
		return false, err
	}

	key := argon2.IDKey([]byte(plaintext), h.salt, h.params.Time, h.params.Memory, h.params.Parallelism, uint32(len(h.key)))

	return subtle.ConstantTimeCompare(key, h.key) == 1, nil
}

type decoded struct {
	params Params
	salt   []byte
	key    []byte
}

func decode(encoded string) (*decoded, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != algorithm {
		return nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, ErrInvalidHash
	}

	var p Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Parallelism); err != nil {
		return nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, ErrInvalidHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, ErrInvalidHash
	}

	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))
	if err := p.validate(); err != nil {
		return nil, ErrInvalidHash
	}

	return &decoded{params: p, salt: salt, key: key}, nil
}

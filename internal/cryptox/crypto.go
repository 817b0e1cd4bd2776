// Package cryptox implements password hashing for stored credentials.
//
// Every stored hash is paired with the identifier of the scheme that produced
// it, so verification can support several schemes while users migrate from an
// older scheme to the current default.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Scheme identifies a password hashing algorithm together with its encoding.
type Scheme string

const (
	// SchemeBcrypt is the legacy scheme.
	SchemeBcrypt Scheme = "bcrypt"
	// SchemeArgon2id is the current default.
	SchemeArgon2id Scheme = "argon2id"
)

// Hasher produces and checks encoded password hashes for one scheme.
type Hasher interface {
	Scheme() Scheme
	Hash(password []byte) (string, error)
	// Verify reports whether password matches encoded. A mismatch is not an
	// error; malformed encodings are.
	Verify(password []byte, encoded string) (bool, error)
}

// PasswordHasher hashes new passwords with a default scheme and verifies
// existing ones with whichever scheme they were stored under.
type PasswordHasher struct {
	def     Scheme
	hashers map[Scheme]Hasher
}

// NewPasswordHasher registers the built-in schemes and selects def as the
// scheme for new hashes.
func NewPasswordHasher(def Scheme) (*PasswordHasher, error) {
	p := &PasswordHasher{
		def: def,
		hashers: map[Scheme]Hasher{
			SchemeBcrypt:   BcryptHasher{Cost: bcrypt.DefaultCost},
			SchemeArgon2id: DefaultArgon2idHasher(),
		},
	}
	if _, ok := p.hashers[def]; !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownHashScheme, def)
	}
	return p, nil
}

// Register adds or replaces the hasher for h.Scheme().
func (p *PasswordHasher) Register(h Hasher) {
	p.hashers[h.Scheme()] = h
}

// Default returns the scheme used for new hashes.
func (p *PasswordHasher) Default() Scheme {
	return p.def
}

// Hash encodes password with the default scheme.
func (p *PasswordHasher) Hash(password []byte) (string, Scheme, error) {
	encoded, err := p.hashers[p.def].Hash(password)
	if err != nil {
		return "", "", err
	}
	return encoded, p.def, nil
}

// Verify checks password against encoded using scheme.
func (p *PasswordHasher) Verify(password []byte, encoded string, scheme Scheme) (bool, error) {
	h, ok := p.hashers[scheme]
	if !ok {
		return false, fmt.Errorf("%w: %q", common.ErrUnknownHashScheme, scheme)
	}
	return h.Verify(password, encoded)
}

// NeedsRehash reports whether credentials stored under scheme should be
// re-hashed with the default scheme.
func (p *PasswordHasher) NeedsRehash(scheme Scheme) bool {
	return scheme != p.def
}

// BcryptHasher is the legacy scheme.
type BcryptHasher struct {
	Cost int
}

func (BcryptHasher) Scheme() Scheme { return SchemeBcrypt }

func (b BcryptHasher) Hash(password []byte) (string, error) {
	h, err := bcrypt.GenerateFromPassword(password, b.Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (BcryptHasher) Verify(password []byte, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}

// Argon2idHasher encodes hashes in the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
type Argon2idHasher struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// DefaultArgon2idHasher returns the parameters used for new credentials.
func DefaultArgon2idHasher() Argon2idHasher {
	return Argon2idHasher{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32, SaltLen: 16}
}

var errMalformedHash = errors.New("malformed argon2id hash")

func (Argon2idHasher) Scheme() Scheme { return SchemeArgon2id }

func (a Argon2idHasher) Hash(password []byte) (string, error) {
	salt := common.GenerateRandByteArray(a.SaltLen)
	key := argon2.IDKey(password, salt, a.Time, a.Memory, a.Threads, a.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, a.Memory, a.Time, a.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

func (Argon2idHasher) Verify(password []byte, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != string(SchemeArgon2id) {
		return false, errMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, errMalformedHash
	}
	if version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported version %d", errMalformedHash, version)
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, errMalformedHash
	}
	// argon2.IDKey panics on zero time or threads.
	if memory == 0 || time == 0 || threads == 0 {
		return false, fmt.Errorf("%w: zero cost parameter", errMalformedHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, errMalformedHash
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false, errMalformedHash
	}

	got := argon2.IDKey(password, salt, time, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

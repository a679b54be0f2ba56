// Package credential derives and verifies password credentials with PBKDF2-HMAC-SHA256.
//
// Every credential, whether created at registration or on a password change,
// uses the same canonical key length so that Verify works for all of them.
package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"shop_backend/internal/shared/apperr"
)

const (
	// MinIterations is the lowest iteration count NewWithParams accepts.
	MinIterations = 300_000

	DefaultIterations = 310_000
	DefaultSaltLength = 16
	DefaultKeyLength  = 16
)

// Params tunes the derivation.
type Params struct {
	Iterations int
	SaltLength int
	KeyLength  int
}

// DefaultParams returns the parameters used by New.
func DefaultParams() Params {
	return Params{
		Iterations: DefaultIterations,
		SaltLength: DefaultSaltLength,
		KeyLength:  DefaultKeyLength,
	}
}

// Credential is a derived hash and the salt it was derived with.
type Credential struct {
	Hash []byte
	Salt []byte
}

// Manager derives and verifies credentials. It is safe for concurrent use.
type Manager struct {
	params Params
	rand   io.Reader
}

// Option configures a Manager.
type Option func(*Manager)

// WithRand replaces the salt randomness source.
func WithRand(r io.Reader) Option {
	return func(m *Manager) { m.rand = r }
}

// New returns a Manager with DefaultParams.
func New(opts ...Option) *Manager {
	m, _ := NewWithParams(DefaultParams(), opts...)
	return m
}

// NewWithParams validates p and returns a Manager.
func NewWithParams(p Params, opts ...Option) (*Manager, error) {
	switch {
	case p.Iterations < MinIterations:
		return nil, apperr.Validation("iterations must be at least %d", MinIterations)
	case p.SaltLength < DefaultSaltLength:
		return nil, apperr.Validation("salt length must be at least %d bytes", DefaultSaltLength)
	case p.KeyLength < DefaultKeyLength:
		return nil, apperr.Validation("key length must be at least %d bytes", DefaultKeyLength)
	}
	m := &Manager{params: p, rand: rand.Reader}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Params returns the manager's derivation parameters.
func (m *Manager) Params() Params {
	return m.params
}

// Derive hashes password with salt. A nil salt means a fresh random one is generated.
func (m *Manager) Derive(password string, salt []byte) (Credential, error) {
	if password == "" {
		return Credential{}, apperr.Validation("password is required")
	}
	if salt == nil {
		salt = make([]byte, m.params.SaltLength)
		if _, err := io.ReadFull(m.rand, salt); err != nil {
			return Credential{}, apperr.Crypto(fmt.Errorf("generate salt: %w", err))
		}
	} else if len(salt) != m.params.SaltLength {
		return Credential{}, apperr.Validation("salt must be %d bytes", m.params.SaltLength)
	}

	return Credential{Hash: m.key(password, salt), Salt: salt}, nil
}

// Verify reports whether password matches hash under salt.
// A stored hash of the wrong length never matches.
func (m *Manager) Verify(password string, hash, salt []byte) bool {
	derived := m.key(password, salt)
	return subtle.ConstantTimeCompare(derived, hash) == 1
}

func (m *Manager) key(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, m.params.Iterations, m.params.KeyLength, sha256.New)
}

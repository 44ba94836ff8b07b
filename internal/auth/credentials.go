package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Credentials holds the process-wide secrets used to sign tokens and derive
// product keys. It is built once at startup and never mutated.
type Credentials struct {
	tokenKey         []byte
	productKeySecret string
	tokenTTL         time.Duration
	bcryptCost       int
	now              func() time.Time
}

// NewCredentials creates the credential service. ttl is the token lifetime.
func NewCredentials(tokenKey, productKeySecret string, ttl time.Duration) *Credentials {
	return &Credentials{
		tokenKey:         []byte(tokenKey),
		productKeySecret: productKeySecret,
		tokenTTL:         ttl,
		bcryptCost:       bcrypt.DefaultCost,
		now:              time.Now,
	}
}

// WithBcryptCost returns a copy hashing with the given cost. Tests use bcrypt.MinCost.
func (c *Credentials) WithBcryptCost(cost int) *Credentials {
	cp := *c
	cp.bcryptCost = cost
	return &cp
}

// WithClock returns a copy using now as the token clock.
func (c *Credentials) WithClock(now func() time.Time) *Credentials {
	cp := *c
	cp.now = now
	return &cp
}

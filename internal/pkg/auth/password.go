package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher turns account passwords into stored hashes and verifies
// login attempts against them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// BcryptHasher is the production PasswordHasher. Customer passwords are
// never stored in any recoverable form.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher at the given cost. Costs below bcrypt's
// minimum fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives the storable hash for a password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Compare reports a password mismatch as a non-nil error.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

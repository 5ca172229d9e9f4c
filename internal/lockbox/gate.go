package lockbox

import (
	"fmt"

	"github.com/osse101/Lockbox_Go/internal/domain"
)

// Gate restricts operations to the single administrator fixed at construction
type Gate struct {
	administrator string
}

// NewGate creates a gate for administrator
func NewGate(administrator string) (*Gate, error) {
	if err := domain.ValidateIdentity(administrator); err != nil {
		return nil, fmt.Errorf("invalid administrator: %w", err)
	}
	return &Gate{administrator: administrator}, nil
}

// Authorize fails with ErrNotAdministrator unless caller is the administrator
func (g *Gate) Authorize(caller string) error {
	if caller != g.administrator {
		return domain.ErrNotAdministrator
	}
	return nil
}

// Administrator returns the administrator identity
func (g *Gate) Administrator() string {
	return g.administrator
}

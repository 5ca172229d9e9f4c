package lockbox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Lockbox_Go/internal/domain"
)

func TestGate(t *testing.T) {
	g, err := NewGate("admin")
	require.NoError(t, err)

	assert.NoError(t, g.Authorize("admin"))
	assert.ErrorIs(t, g.Authorize("mallory"), domain.ErrNotAdministrator)
	assert.ErrorIs(t, g.Authorize(""), domain.ErrNotAdministrator)
	assert.ErrorIs(t, g.Authorize("Admin"), domain.ErrNotAdministrator)
	assert.Equal(t, "admin", g.Administrator())
}

func TestNewGate_RejectsBadIdentity(t *testing.T) {
	_, err := NewGate("")
	assert.ErrorIs(t, err, domain.ErrInvalidBeneficiary)

	_, err = NewGate(strings.Repeat("x", domain.MaxIdentityLength+1))
	assert.Error(t, err)
}

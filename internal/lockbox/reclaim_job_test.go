package lockbox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReclaimJob_Process(t *testing.T) {
	f := newFixture(t, time.Second)
	f.deposit(t, 4)
	f.grant(t, alice, 4)
	f.clock.Advance(2 * time.Second)

	job := NewReclaimJob(f.svc)
	require.NoError(t, job.Process(context.Background()))

	assert.Equal(t, uint64(4), f.balance(t, admin))

	// Nothing left: still succeeds
	assert.NoError(t, job.Process(context.Background()))
}

package lockbox

import (
	"context"
	"testing"
	"time"

	"github.com/holiman/uint256"
)

func BenchmarkClaimableTotal(b *testing.B) {
	f := newFixture(b, time.Hour)
	ctx := context.Background()
	for i := 0; i < 500; i++ {
		_, _ = f.svc.Grant(ctx, admin, alice, uint256.NewInt(1), 0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.svc.ClaimableTotal(ctx, alice)
	}
}

func BenchmarkGrant(b *testing.B) {
	f := newFixture(b, time.Hour)
	ctx := context.Background()
	amount := uint256.NewInt(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.svc.Grant(ctx, admin, alice, amount, 0)
	}
}

package lockbox

import (
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Lockbox_Go/internal/domain"
)

// IsExpired reports whether entry is no longer claimable at now under the
// given duration. An entry is expired at exactly grantedAt+duration.
func IsExpired(entry domain.RewardEntry, now time.Time, duration time.Duration) bool {
	return !now.Before(entry.ExpiresAt(duration))
}

// partition splits entries into claimable and expired, keeping order
func partition(entries []domain.RewardEntry, now time.Time, duration time.Duration) (active, expired []domain.RewardEntry) {
	active = make([]domain.RewardEntry, 0, len(entries))
	for _, e := range entries {
		if IsExpired(e, now, duration) {
			expired = append(expired, e)
		} else {
			active = append(active, e)
		}
	}
	return active, expired
}

func entryIDs(entries []domain.RewardEntry) []uuid.UUID {
	ids := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

// totalsByBeneficiary sums amounts per beneficiary as decimal strings
func totalsByBeneficiary(entries []domain.RewardEntry) (map[string]string, error) {
	grouped := make(map[string][]domain.RewardEntry)
	for _, e := range entries {
		grouped[e.Beneficiary] = append(grouped[e.Beneficiary], e)
	}

	out := make(map[string]string, len(grouped))
	for b, es := range grouped {
		sum, err := domain.SumAmounts(es)
		if err != nil {
			return nil, err
		}
		out[b] = sum.Dec()
	}
	return out, nil
}

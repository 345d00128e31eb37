package streak

import (
	"sort"
	"time"

	"github.com/limbo/engagement/pkg/entity"
)

type GapResolution struct {
	Consumed []entity.FreezeToken
	Bridged  bool
}

// FreezePolicy decides what happens when the backward walk meets a gap.
// available is ordered oldest first.
type FreezePolicy interface {
	ResolveGap(gapDays int, available []entity.FreezeToken) GapResolution
}

// AutoConsumePolicy spends exactly gapDays of the oldest tokens, or nothing.
type AutoConsumePolicy struct{}

func (AutoConsumePolicy) ResolveGap(gapDays int, available []entity.FreezeToken) GapResolution {
	if gapDays <= 0 || len(available) < gapDays {
		return GapResolution{}
	}
	consumed := make([]entity.FreezeToken, gapDays)
	copy(consumed, available[:gapDays])
	return GapResolution{Consumed: consumed, Bridged: true}
}

// ManualApplyPolicy never bridges on its own; the user spends freezes explicitly.
type ManualApplyPolicy struct{}

func (ManualApplyPolicy) ResolveGap(int, []entity.FreezeToken) GapResolution {
	return GapResolution{}
}

func PolicyFor(behavior entity.FreezeBehavior) FreezePolicy {
	if behavior == entity.AutoConsumeFreezes {
		return AutoConsumePolicy{}
	}
	return ManualApplyPolicy{}
}

// AvailableFreezes keeps the tokens spendable at the given instant, oldest first.
func AvailableFreezes(tokens []entity.FreezeToken, at time.Time) []entity.FreezeToken {
	available := make([]entity.FreezeToken, 0, len(tokens))
	for _, t := range tokens {
		if t.IsAvailable(at) {
			available = append(available, t)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].DateCreated.Before(available[j].DateCreated)
	})
	return available
}

package streak

import (
	"sort"

	"github.com/limbo/engagement/pkg/entity"
)

type Input struct {
	// Qualifying days in any order; duplicates are ignored.
	Days  []DayKey
	Today DayKey
	// Tokens spendable at the reference instant, oldest first.
	Freezes []entity.FreezeToken
	Policy  FreezePolicy
}

// Gap is a run of missing days between two qualifying days. Latest is the
// most recent missing day.
type Gap struct {
	Latest DayKey
	Length int
}

// Bridge records a token spent to cover a missing day.
type Bridge struct {
	Day   DayKey
	Token entity.FreezeToken
}

type Result struct {
	CurrentStreak int
	LongestStreak int
	Status        entity.StreakStatus
	// Gap where the backward walk stopped, nil when the walk ran out of history.
	BreakGap         *Gap
	ManualStatus     entity.ManualFreezeStatus
	Bridges          []Bridge
	FreezesRemaining []entity.FreezeToken
}

// FreezesNeeded is the length of the gap at the break point.
func (r Result) FreezesNeeded() int {
	if r.BreakGap == nil {
		return 0
	}
	return r.BreakGap.Length
}

// Calculate walks back from today over the qualifying days. A today that
// has not qualified yet does not break the streak. Gaps are handed to the
// policy; the walk stops at the first gap the policy does not bridge.
func Calculate(in Input) Result {
	policy := in.Policy
	if policy == nil {
		policy = ManualApplyPolicy{}
	}
	res := Result{
		Status:           entity.StreakNone,
		ManualStatus:     entity.CannotSaveWithFreezes(),
		FreezesRemaining: in.Freezes,
	}
	days := distinctDescending(in.Days)
	if len(days) == 0 {
		return res
	}
	qualifying := make(map[DayKey]struct{}, len(days))
	for _, d := range days {
		qualifying[d] = struct{}{}
	}
	_, todayQualifies := qualifying[in.Today]
	cursor := in.Today
	if !todayQualifies {
		cursor = in.Today - 1
	}

	available := in.Freezes
	for {
		if _, ok := qualifying[cursor]; ok {
			res.CurrentStreak++
			cursor--
			continue
		}
		prev, ok := latestBefore(days, cursor)
		if !ok {
			break
		}
		gap := Gap{Latest: cursor, Length: int(cursor - prev)}
		resolution := policy.ResolveGap(gap.Length, available)
		if !resolution.Bridged {
			res.BreakGap = &gap
			if len(available) >= gap.Length {
				res.ManualStatus = entity.CanSaveWithFreezes(gap.Length)
			}
			break
		}
		for i, token := range resolution.Consumed {
			res.Bridges = append(res.Bridges, Bridge{Day: cursor - DayKey(i), Token: token})
		}
		available = withoutTokens(available, resolution.Consumed)
		res.CurrentStreak += gap.Length
		cursor = prev
	}
	res.FreezesRemaining = available

	covered := make([]DayKey, 0, len(days)+len(res.Bridges))
	covered = append(covered, days...)
	for _, b := range res.Bridges {
		covered = append(covered, b.Day)
	}
	res.LongestStreak = LongestRun(covered)

	switch {
	case todayQualifies:
		res.Status = entity.StreakActive
	case res.CurrentStreak > 0:
		res.Status = entity.StreakAtRisk
	default:
		res.Status = entity.StreakBroken
	}
	return res
}

// LongestRun is the length of the longest run of consecutive days.
func LongestRun(days []DayKey) int {
	sorted := distinctDescending(days)
	longest, run := 0, 0
	for i, d := range sorted {
		if i > 0 && sorted[i-1]-d == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// BridgeGap assigns the oldest tokens to the days of a gap, most recent day first.
func BridgeGap(gap Gap, available []entity.FreezeToken) ([]Bridge, bool) {
	resolution := AutoConsumePolicy{}.ResolveGap(gap.Length, available)
	if !resolution.Bridged {
		return nil, false
	}
	bridges := make([]Bridge, 0, len(resolution.Consumed))
	for i, token := range resolution.Consumed {
		bridges = append(bridges, Bridge{Day: gap.Latest - DayKey(i), Token: token})
	}
	return bridges, true
}

func distinctDescending(days []DayKey) []DayKey {
	sorted := make([]DayKey, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })
	out := make([]DayKey, 0, len(sorted))
	for _, d := range sorted {
		if len(out) == 0 || out[len(out)-1] != d {
			out = append(out, d)
		}
	}
	return out
}

// latestBefore finds the latest day strictly before the given one in a
// descending slice.
func latestBefore(desc []DayKey, day DayKey) (DayKey, bool) {
	i := sort.Search(len(desc), func(i int) bool { return desc[i] < day })
	if i == len(desc) {
		return 0, false
	}
	return desc[i], true
}

func withoutTokens(tokens, consumed []entity.FreezeToken) []entity.FreezeToken {
	spent := make(map[string]struct{}, len(consumed))
	for _, t := range consumed {
		spent[t.ID] = struct{}{}
	}
	rest := make([]entity.FreezeToken, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := spent[t.ID]; !ok {
			rest = append(rest, t)
		}
	}
	return rest
}

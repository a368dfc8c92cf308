package rewards

import (
	"fmt"
	"sort"
)

// Parts counts earned building parts per tier. Counts never decrease
// during a session.
type Parts map[Tier]int

// Add credits n parts of tier t. Non-positive amounts are ignored.
func (p Parts) Add(t Tier, n int) {
	if n <= 0 {
		return
	}
	p[t] += n
}

// Clone returns an independent copy.
func (p Parts) Clone() Parts {
	out := make(Parts, len(p))
	for t, n := range p {
		out[t] = n
	}
	return out
}

// Total returns the number of parts across all tiers.
func (p Parts) Total() int {
	total := 0
	for _, n := range p {
		total += n
	}
	return total
}

// Count is a tier with its count, used for display.
type Count struct {
	Tier  Tier
	Count int
}

// Sorted returns the non-zero tiers, least precious first. Unknown tiers
// sort last by name.
func (p Parts) Sorted() []Count {
	out := make([]Count, 0, len(p))
	for t, n := range p {
		if n > 0 {
			out = append(out, Count{Tier: t, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := tierRank(out[i].Tier), tierRank(out[j].Tier)
		if ri != rj {
			return ri < rj
		}
		return out[i].Tier < out[j].Tier
	})
	return out
}

// Lines renders one "icon name ×n" line per earned tier.
func (p Parts) Lines() []string {
	sorted := p.Sorted()
	lines := make([]string, 0, len(sorted))
	for _, c := range sorted {
		lines = append(lines, fmt.Sprintf("%s %s ×%d", c.Tier.Icon(), c.Tier.DisplayName(), c.Count))
	}
	return lines
}

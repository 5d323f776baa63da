package prepare

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/plotf/core"
)

// ParseDomain resolves an entry's textual domain bounds against a fallback
// (normally the viewport's axis range).
//
// Rules:
//   - either bound empty or unparsable ⇒ fallback, unchanged.
//   - max ≤ min after parsing ⇒ coerced to [min(given), max(given)+1e-6].
func ParseDomain(minStr, maxStr string, fallback core.Range) core.Range {
	lo, err1 := strconv.ParseFloat(strings.TrimSpace(minStr), 64)
	hi, err2 := strconv.ParseFloat(strings.TrimSpace(maxStr), 64)
	if err1 != nil || err2 != nil {
		return fallback
	}
	r := core.Range{Min: lo, Max: hi}
	if !r.Valid() {
		// Reversed or degenerate bounds are the user's, just re-ordered;
		// non-finite bounds mean the text was junk.
		if !core.IsReal(lo) || !core.IsReal(hi) {
			return fallback
		}

		return r.Ordered()
	}

	return r
}

// EffectiveDomain is the sampling domain of an entry: the declared bounds
// intersected with the viewport axis. A declared domain entirely outside
// the viewport is kept as-is — the geometry simply falls out of view.
func EffectiveDomain(e RawEntry, axis core.Range) core.Range {
	declared := ParseDomain(e.DomainMin, e.DomainMax, axis)
	if sect := declared.Intersect(axis); sect.Valid() {
		return sect
	}

	return declared
}

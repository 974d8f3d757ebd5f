// Package claim enforces the per-run check-off rules: how many cells one
// run may claim and which type mixes are allowed. These are run-claim
// rules, distinct from the board placement rules in internal/board.
package claim

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
)

// MaxPerRun is the cell cap for a single run.
const MaxPerRun = 3

var strictCodeRE = regexp.MustCompile(`^[ABCDW]\d{2}$`)

// Normalize canonicalizes each raw label ("a7" -> "A07") and drops blanks.
func Normalize(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, raw := range labels {
		if v := card.NormalizeLabel(raw); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Validate checks a run's claimed labels and returns every problem as a
// player-facing message. An empty result means the claim is acceptable.
// Labels are normalized first; the board itself is not consulted here.
func Validate(labels []string) []string {
	clean := Normalize(labels)
	if len(clean) == 0 {
		return []string{"enter at least one card code to check"}
	}

	var msgs []string

	seen := make(map[string]bool, len(clean))
	for _, l := range clean {
		if seen[l] {
			msgs = append(msgs, "duplicate cards in the claim (remove the repeats)")
			break
		}
		seen[l] = true
	}

	var malformed []string
	for _, l := range clean {
		if !strictCodeRE.MatchString(l) {
			malformed = append(malformed, l)
		}
	}
	if len(malformed) > 0 {
		msgs = append(msgs, fmt.Sprintf("malformed card codes: %s", strings.Join(malformed, ", ")))
	}

	if len(clean) > MaxPerRun {
		return []string{fmt.Sprintf("a single run can check at most %d cells", MaxPerRun)}
	}

	counts := map[card.Type]int{}
	for _, l := range clean {
		t := card.Type(l[:1])
		if !t.Valid() {
			msgs = append(msgs, fmt.Sprintf("unknown card type: %s", l))
			continue
		}
		counts[t]++
	}
	if counts[card.Base] > 1 {
		msgs = append(msgs, "at most one A (base) card per run")
	}
	if counts[card.Condition] > 1 {
		msgs = append(msgs, "at most one B (condition) card per run")
	}
	if counts[card.Coop] > 1 {
		msgs = append(msgs, "at most one C (co-op) card per run")
	}

	return msgs
}

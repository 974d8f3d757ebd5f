package card

import (
	"fmt"
	"regexp"
	"strings"
)

// tierAliases accepts the short forms and the Korean names used on the
// sign-up form alongside the canonical tier names.
var tierAliases = map[string]Tier{
	"beginner":     Beginner,
	"beg":          Beginner,
	"b":            Beginner,
	"초보":           Beginner,
	"intermediate": Intermediate,
	"inter":        Intermediate,
	"i":            Intermediate,
	"중수":           Intermediate,
	"advanced":     Advanced,
	"adv":          Advanced,
	"a":            Advanced,
	"고수":           Advanced,
}

// NormalizeTier resolves a raw tier string (canonical, abbreviated or the
// Korean form) to a Tier.
func NormalizeTier(value string) (Tier, error) {
	raw := strings.TrimSpace(value)
	if t, ok := tierAliases[raw]; ok {
		return t, nil
	}
	if t, ok := tierAliases[strings.ToLower(raw)]; ok {
		return t, nil
	}
	return "", fmt.Errorf("invalid tier: %q", value)
}

var looseCodeRE = regexp.MustCompile(`^([ABCDW])(\d{1,2})$`)

// NormalizeLabel canonicalizes a player-typed card code: trims whitespace,
// upcases, and zero-pads the number ("a7" -> "A07"). Input that does not
// look like a card code at all is returned upcased and unpadded so the
// caller can report it verbatim.
func NormalizeLabel(value string) string {
	raw := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(value)), " ", "")
	if raw == "" {
		return ""
	}
	m := looseCodeRE.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	if len(m[2]) == 1 {
		return m[1] + "0" + m[2]
	}
	return m[1] + m[2]
}

package card

// DefaultDefs is the reference 42-card season deck: 14 base, 10 condition,
// 9 co-op, 5 marathon, 4 wild. The engine never assumes these numbers; any
// catalog built with NewCatalog works.
var DefaultDefs = []Def{
	// A. Base
	{Code: "A01", Type: Base, Stars: 1, Title: "7km+ (tier-scaled)"},
	{Code: "A02", Type: Base, Stars: 2, Title: "8km+ (tier-scaled)"},
	{Code: "A03", Type: Base, Stars: 2, Title: "10km+ (tier-scaled)"},
	{Code: "A04", Type: Base, Stars: 1, Title: "40min+ (tier-scaled)"},
	{Code: "A05", Type: Base, Stars: 2, Title: "60min+ (tier-scaled)"},
	{Code: "A06", Type: Base, Stars: 1, Title: "Warm-up 10min"},
	{Code: "A07", Type: Base, Stars: 1, Title: "Cool-down stretch 10min"},
	{Code: "A08", Type: Base, Stars: 1, Title: "Foam roll / massage 20min"},
	{Code: "A09", Type: Base, Stars: 2, Title: "Strength 10min"},
	{Code: "A10", Type: Base, Stars: 2, Title: "5km with first-time runner"},
	{Code: "A11", Type: Base, Stars: 2, Title: "New route (tier-scaled)"},
	{Code: "A12", Type: Base, Stars: 2, Title: "Build-up (tier-scaled)"},
	{Code: "A13", Type: Base, Stars: 2, Title: "Running drills 5min (with base run)"},
	{Code: "A14", Type: Base, Stars: 1, Title: "Instagram share"},
	// B. Condition
	{Code: "B01", Type: Condition, Stars: 1, Title: "Night (>=22:00)"},
	{Code: "B02", Type: Condition, Stars: 2, Title: "Dawn (<06:00)"},
	{Code: "B03", Type: Condition, Stars: 2, Title: "Below 0°C"},
	{Code: "B04", Type: Condition, Stars: 2, Title: "Rain/Snow"},
	{Code: "B05", Type: Condition, Stars: 1, Title: "Weekend"},
	{Code: "B06", Type: Condition, Stars: 2, Title: "Cold/windy (feels<=-5 or wind>=6)"},
	{Code: "B07", Type: Condition, Stars: 2, Title: "Hills (gain>=100 or repeats>=3)"},
	{Code: "B08", Type: Condition, Stars: 1, Title: "Track"},
	{Code: "B09", Type: Condition, Stars: 1, Title: "Treadmill"},
	{Code: "B10", Type: Condition, Stars: 1, Title: "Reflective/light gear"},
	// C. Co-op
	{Code: "C01", Type: Coop, Stars: 1, Title: "Join group run"},
	{Code: "C02", Type: Coop, Stars: 2, Title: "Host group run (>=2)"},
	{Code: "C03", Type: Coop, Stars: 1, Title: "Pair run (>=2, 20min+)"},
	{Code: "C04", Type: Coop, Stars: 2, Title: "Same day 3+ runners"},
	{Code: "C05", Type: Coop, Stars: 1, Title: "Thursday meeting"},
	{Code: "C06", Type: Coop, Stars: 2, Title: "Pace-making 30min+"},
	{Code: "C07", Type: Coop, Stars: 2, Title: "Mixed-tier run"},
	{Code: "C08", Type: Coop, Stars: 1, Title: "Easy chat run 60min+"},
	{Code: "C09", Type: Coop, Stars: 1, Title: "After-run coffee/stretch"},
	// D. Marathon
	{Code: "D01", Type: Marathon, Stars: 3, Title: "5-day streak"},
	{Code: "D02", Type: Marathon, Stars: 3, Title: "Final week 6 runs"},
	{Code: "D03", Type: Marathon, Stars: 3, Title: "Tier distance goal"},
	{Code: "D04", Type: Marathon, Stars: 3, Title: "3-day streak"},
	{Code: "D05", Type: Marathon, Stars: 3, Title: "Alternating days (run-rest-run-rest)"},
	// W. Wild
	{Code: "W01", Type: Wild, Stars: 3, Title: "Thu meeting x3"},
	{Code: "W02", Type: Wild, Stars: 3, Title: "Host 2x (>=3 ppl each)"},
	{Code: "W03", Type: Wild, Stars: 3, Title: "Pace-maker x3"},
	{Code: "W04", Type: Wild, Stars: 3, Title: "6 runs in a week"},
}

// DefaultCatalog returns the reference deck as a Catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultDefs)
	if err != nil {
		panic(err) // the built-in deck is validated by tests
	}
	return c
}

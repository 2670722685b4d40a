package tiervalues

// CS/min thresholds per tier, ascending. The estimated tier is the highest
// entry whose threshold does not exceed the player's overall CS/min.
var csTierThresholds = []struct {
	Tier     string
	CSPerMin float64
}{
	{"Iron", 3.5},
	{"Bronze", 4.0},
	{"Silver", 4.5},
	{"Gold", 5.0},
	{"Platinum", 5.5},
	{"Emerald", 6.0},
	{"Diamond", 6.5},
	{"Master", 7.0},
	{"Grandmaster", 7.5},
	{"Challenger", 8.0},
}

// TierForCSPerMin maps an overall CS/min onto the threshold table.
// Anything below the lowest threshold is still Iron.
func TierForCSPerMin(csPerMin float64) string {
	tier := csTierThresholds[0].Tier
	for _, entry := range csTierThresholds {
		if csPerMin < entry.CSPerMin {
			break
		}
		tier = entry.Tier
	}
	return tier
}

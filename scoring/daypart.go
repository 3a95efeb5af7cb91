package scoring

// daypart is one half-open [From,To) hour bucket of the day.
type daypart struct {
	From       int
	To         int
	Multiplier float64
	Label      string
}

// dayparts covers all 24 hours with no gaps. Hours outside every bucket fall
// into the night drop. This is the single canonical table; both the smart
// scorer and the bulk enrichment path read it.
var dayparts = []daypart{
	{From: 5, To: 10, Multiplier: 0.78, Label: "Morning"},
	{From: 10, To: 14, Multiplier: 1.22, Label: "Lunch Spike"},
	{From: 14, To: 17, Multiplier: 0.95, Label: "Afternoon"},
	{From: 17, To: 22, Multiplier: 1.35, Label: "Evening Peak"},
}

const nightDropMultiplier = 0.58
const nightDropLabel = "Night Drop"

// DaypartMultiplier maps an hour of day (0-23) to a footfall multiplier and a
// human readable daypart label.
func DaypartMultiplier(hour int) (float64, string) {
	h := ((hour % 24) + 24) % 24
	for _, d := range dayparts {
		if h >= d.From && h < d.To {
			return d.Multiplier, d.Label
		}
	}
	return nightDropMultiplier, nightDropLabel
}

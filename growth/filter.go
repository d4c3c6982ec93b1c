package growth

// OECDCountries are the 22 long-standing OECD members covered by the Penn World Table accounting
// exercise.
var OECDCountries = []string{
	"Australia", "Austria", "Belgium", "Canada", "Denmark", "Finland", "France",
	"Germany", "Greece", "Iceland", "Ireland", "Italy", "Japan", "Netherlands",
	"New Zealand", "Norway", "Portugal", "Spain", "Sweden", "Switzerland",
	"United Kingdom", "United States",
}

// Filter selects the panel rows to account for. An empty country list keeps every country and a
// zero year leaves that side of the window open. Both years are inclusive.
type Filter struct {
	Countries []string
	StartYear int
	EndYear   int
}

// Apply returns the complete rows matching the filter without modifying the panel
func (f Filter) Apply(panel []Observation) []Observation {
	keep := make(map[string]struct{}, len(f.Countries))
	for _, c := range f.Countries {
		keep[c] = struct{}{}
	}

	res := make([]Observation, 0, len(panel))
	for _, o := range panel {
		if len(keep) > 0 {
			if _, exists := keep[o.Country]; !exists {
				continue
			}
		}
		if f.StartYear != 0 && o.Year < f.StartYear {
			continue
		}
		if f.EndYear != 0 && o.Year > f.EndYear {
			continue
		}
		if !o.Complete() {
			continue
		}
		res = append(res, o)
	}
	return res
}

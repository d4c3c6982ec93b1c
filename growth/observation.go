package growth

import "math"

// Observation is one country-year row of a macro panel. Field names follow the Penn World Table.
type Observation struct {
	Country     string `json:"country"`
	CountryCode string `json:"country_code,omitempty"`
	Year        int    `json:"year"`

	RGDPNA float64 `json:"rgdpna"` // real output at constant national prices
	RKNA   float64 `json:"rkna"`   // real capital stock at constant national prices
	Pop    float64 `json:"pop"`    // population
	Emp    float64 `json:"emp"`    // persons engaged
	Avh    float64 `json:"avh"`    // average annual hours worked by persons engaged
	Labsh  float64 `json:"labsh"`  // share of labour compensation in GDP
	RTFPNA float64 `json:"rtfpna"` // TFP at constant national prices
}

// OutputPerWorker is real output divided by employment
func (o Observation) OutputPerWorker() float64 {
	return o.RGDPNA / o.Emp
}

// CapitalPerWorker is the real capital stock divided by employment
func (o Observation) CapitalPerWorker() float64 {
	return o.RKNA / o.Emp
}

// CapitalShare is one minus the labour share
func (o Observation) CapitalShare() float64 {
	return 1 - o.Labsh
}

// Hours is total hours worked
func (o Observation) Hours() float64 {
	return o.Emp * o.Avh
}

// Complete reports whether every field the panel carries is a finite number. Rows failing this
// check are dropped before accounting.
func (o Observation) Complete() bool {
	for _, v := range []float64{o.RGDPNA, o.RKNA, o.Pop, o.Emp, o.Avh, o.Labsh, o.RTFPNA} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

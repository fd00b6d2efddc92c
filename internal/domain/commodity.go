package domain

import (
	"fmt"
	"strings"
)

// Commodity identifies one of the ten tradeable goods. Commodities have
// no object identity of their own; all market data is keyed by
// (location, commodity).
type Commodity string

const (
	CommodityFuel     Commodity = "fuel"
	CommodityWater    Commodity = "water"
	CommodityGrain    Commodity = "grain"
	CommodityOre      Commodity = "ore"
	CommodityMedicine Commodity = "medicine"
	CommoditySlaves   Commodity = "slaves"
	CommodityGold     Commodity = "gold"
	CommodityExotic   Commodity = "exotic"
	CommodityCrystal  Commodity = "crystal"
	CommoditySpice    Commodity = "spice"
)

// Commodities lists every commodity kind in a stable order.
var Commodities = []Commodity{
	CommodityFuel,
	CommodityWater,
	CommodityGrain,
	CommodityOre,
	CommodityMedicine,
	CommoditySlaves,
	CommodityGold,
	CommodityExotic,
	CommodityCrystal,
	CommoditySpice,
}

// ParseCommodity converts a string (any casing) into a Commodity.
func ParseCommodity(s string) (Commodity, error) {
	c := Commodity(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Commodities {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown commodity %q", s)
}

// FluctuationBand classifies how volatile a commodity's price is.
type FluctuationBand string

const (
	BandLight    FluctuationBand = "light"    // 5–15% per turn
	BandModerate FluctuationBand = "moderate" // 15–25% per turn
	BandHeavy    FluctuationBand = "heavy"    // 30–50% per turn
)

// Rates returns the band's [min, max] magnitude as fractions.
func (b FluctuationBand) Rates() (float64, float64) {
	switch b {
	case BandModerate:
		return 0.15, 0.25
	case BandHeavy:
		return 0.30, 0.50
	default:
		return 0.05, 0.15
	}
}

// PriceRange is an inclusive integer price interval.
type PriceRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Valid reports whether the range is usable (0 ≤ min ≤ max).
func (r PriceRange) Valid() bool {
	return r.Min >= 0 && r.Max >= r.Min
}

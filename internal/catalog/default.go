package catalog

import "github.com/dmateos/startrader/internal/domain"

// defaultCommodities is the built-in pricing table for the ten commodity
// kinds. A universe file may override individual entries; kinds it leaves
// out keep these specs.
var defaultCommodities = map[domain.Commodity]CommoditySpec{
	domain.CommodityFuel:     {BaseRange: domain.PriceRange{Min: 5, Max: 20}, Band: domain.BandLight},
	domain.CommodityWater:    {BaseRange: domain.PriceRange{Min: 3, Max: 12}, Band: domain.BandLight},
	domain.CommodityGrain:    {BaseRange: domain.PriceRange{Min: 4, Max: 15}, Band: domain.BandLight},
	domain.CommodityOre:      {BaseRange: domain.PriceRange{Min: 50, Max: 150}, Band: domain.BandModerate},
	domain.CommodityMedicine: {BaseRange: domain.PriceRange{Min: 40, Max: 120}, Band: domain.BandModerate},
	domain.CommoditySlaves:   {BaseRange: domain.PriceRange{Min: 10, Max: 50}, Band: domain.BandModerate},
	domain.CommoditySpice:    {BaseRange: domain.PriceRange{Min: 60, Max: 180}, Band: domain.BandModerate},
	domain.CommodityGold:     {BaseRange: domain.PriceRange{Min: 200, Max: 600}, Band: domain.BandHeavy},
	domain.CommodityExotic:   {BaseRange: domain.PriceRange{Min: 150, Max: 500}, Band: domain.BandHeavy},
	domain.CommodityCrystal:  {BaseRange: domain.PriceRange{Min: 120, Max: 400}, Band: domain.BandHeavy},
}

// defaultBalance is the built-in game balance. A fresh session starts
// broke but fueled, docked at EARTH.
var defaultBalance = Balance{
	StartingCash:  0,
	StartingFuel:  5,
	StartLocation: "EARTH",
	BaseCapacity:  50,

	RobotIncome:    10,
	MerchantIncome: 25,
	ArchonIncome:   40,

	WeaponsOutput: 1,
	ArmyOutput:    3,
	ArchonOutput:  2,

	RobotCapacity:    5,
	MerchantCapacity: 15,
	ArchonCapacity:   15,
}

// defaultLocations is the built-in universe.
var defaultLocations = []LocationRule{
	{
		Name:       "EARTH",
		FuelCost:   1,
		UnlockCost: 0,
		Multiplier: 1.0,
		Candidates: []domain.Commodity{
			domain.CommodityFuel,
			domain.CommodityWater,
			domain.CommodityGrain,
			domain.CommodityOre,
			domain.CommodityMedicine,
		},
		AlwaysAvailable: []domain.Commodity{domain.CommodityFuel},
	},
	{
		Name:       "MARS",
		FuelCost:   2,
		UnlockCost: 100,
		Multiplier: 1.2,
		Candidates: []domain.Commodity{
			domain.CommodityOre,
			domain.CommoditySlaves,
			domain.CommodityFuel,
			domain.CommodityCrystal,
			domain.CommoditySpice,
		},
		MultiplierOverrides: map[domain.Commodity]float64{
			domain.CommoditySlaves: 2.0,
		},
	},
	{
		Name:       "VENUS",
		FuelCost:   2,
		UnlockCost: 250,
		Multiplier: 1.5,
		Candidates: []domain.Commodity{
			domain.CommodityExotic,
			domain.CommodityGold,
			domain.CommodityMedicine,
			domain.CommoditySpice,
			domain.CommodityCrystal,
		},
		AlwaysAvailable: []domain.Commodity{domain.CommodityExotic},
	},
	{
		Name:       "MERCURY",
		FuelCost:   3,
		UnlockCost: 500,
		Multiplier: 0.8,
		Candidates: []domain.Commodity{
			domain.CommodityOre,
			domain.CommodityGold,
			domain.CommodityCrystal,
		},
		SpecialRanges: map[domain.Commodity]domain.PriceRange{
			domain.CommodityGold: {Min: 500, Max: 1000},
		},
	},
	{
		Name:       "JUPITER",
		FuelCost:   4,
		UnlockCost: 1000,
		Multiplier: 2.0,
		Candidates: []domain.Commodity{
			domain.CommodityFuel,
			domain.CommodityWater,
			domain.CommodityExotic,
			domain.CommodityGold,
			domain.CommoditySlaves,
			domain.CommoditySpice,
		},
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c := &Catalog{
		commodities: defaultCommodities,
		locations:   make(map[string]LocationRule, len(defaultLocations)),
		balance:     defaultBalance,
	}
	for _, rule := range defaultLocations {
		key := Canonical(rule.Name)
		rule.Name = key
		c.locations[key] = rule
		c.names = append(c.names, key)
	}
	return c
}

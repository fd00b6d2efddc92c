package catalog

import (
	"fmt"
	"os"

	"github.com/dmateos/startrader/internal/domain"
	"gopkg.in/yaml.v3"
)

// universeFile maps the on-disk YAML layout. Absent sections fall back to
// the built-in defaults so a universe file only needs to override what it
// cares about.
type universeFile struct {
	Balance     *Balance                 `yaml:"balance"`
	Commodities map[string]CommoditySpec `yaml:"commodities"`
	Locations   []LocationRule           `yaml:"locations"`
}

// LoadFile reads a universe YAML file and builds a validated Catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read universe: %w", err)
	}
	return Parse(data)
}

// Parse builds a validated Catalog from universe YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var uni universeFile
	if err := yaml.Unmarshal(data, &uni); err != nil {
		return nil, fmt.Errorf("parse universe: %w", err)
	}

	c := &Catalog{
		commodities: defaultCommodities,
		locations:   make(map[string]LocationRule),
		balance:     defaultBalance,
	}

	if uni.Balance != nil {
		c.balance = *uni.Balance
		c.balance.StartLocation = Canonical(c.balance.StartLocation)
		if c.balance.BaseCapacity <= 0 {
			return nil, fmt.Errorf("balance: base_capacity must be > 0")
		}
	}

	if len(uni.Commodities) > 0 {
		parsed := make(map[domain.Commodity]CommoditySpec, len(uni.Commodities))
		for name, spec := range uni.Commodities {
			comm, err := domain.ParseCommodity(name)
			if err != nil {
				return nil, fmt.Errorf("commodities: %w", err)
			}
			if !spec.BaseRange.Valid() {
				return nil, fmt.Errorf("commodity %s: invalid base_range [%d, %d]",
					comm, spec.BaseRange.Min, spec.BaseRange.Max)
			}
			parsed[comm] = spec
		}
		// Every commodity kind must keep a pricing spec; fill gaps
		// from the defaults.
		for _, comm := range domain.Commodities {
			if _, ok := parsed[comm]; !ok {
				parsed[comm] = defaultCommodities[comm]
			}
		}
		c.commodities = parsed
	}

	locations := uni.Locations
	if len(locations) == 0 {
		locations = defaultLocations
	}
	for _, rule := range locations {
		if rule.Name == "" {
			return nil, fmt.Errorf("locations: rule with empty name")
		}
		key := Canonical(rule.Name)
		if _, dup := c.locations[key]; dup {
			return nil, fmt.Errorf("locations: duplicate name %q", key)
		}
		if rule.Multiplier <= 0 {
			rule.Multiplier = 1.0
		}
		if rule.FuelCost <= 0 {
			rule.FuelCost = 1
		}
		if err := validateRule(c, rule); err != nil {
			return nil, fmt.Errorf("location %s: %w", key, err)
		}
		rule.Name = key
		c.locations[key] = rule
		c.names = append(c.names, key)
	}
	return c, nil
}

func validateRule(c *Catalog, rule LocationRule) error {
	for _, comm := range rule.Candidates {
		if _, ok := c.commodities[comm]; !ok {
			return fmt.Errorf("unknown candidate commodity %q", comm)
		}
	}
	if len(rule.AlwaysAvailable) > MaxActive {
		return fmt.Errorf("%d always_available commodities exceed the active-set cap of %d",
			len(rule.AlwaysAvailable), MaxActive)
	}
	for _, comm := range rule.AlwaysAvailable {
		if !rule.Candidate(comm) {
			return fmt.Errorf("always_available %q is not a candidate", comm)
		}
	}
	for comm, m := range rule.MultiplierOverrides {
		if _, ok := c.commodities[comm]; !ok {
			return fmt.Errorf("unknown commodity %q in multiplier_overrides", comm)
		}
		if m <= 0 {
			return fmt.Errorf("multiplier override for %q must be > 0", comm)
		}
	}
	for comm, pr := range rule.SpecialRanges {
		if _, ok := c.commodities[comm]; !ok {
			return fmt.Errorf("unknown commodity %q in special_ranges", comm)
		}
		if !pr.Valid() {
			return fmt.Errorf("invalid special range for %q [%d, %d]", comm, pr.Min, pr.Max)
		}
	}
	return nil
}

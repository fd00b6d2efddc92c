package domain

import (
	"fmt"
	"strings"
)

// UnitKind identifies a deployable unit. Held units live in the inventory
// collaborator; once deployed they are counted on the ledger instead and
// produce recurring per-turn income or output.
type UnitKind string

const (
	UnitRobot    UnitKind = "robot"
	UnitMerchant UnitKind = "merchant"
	UnitWeapons  UnitKind = "weapons"
	UnitArmy     UnitKind = "army"
	UnitArchon   UnitKind = "archon"
)

// UnitKinds lists every deployable unit kind in a stable order.
var UnitKinds = []UnitKind{
	UnitRobot,
	UnitMerchant,
	UnitWeapons,
	UnitArmy,
	UnitArchon,
}

// ParseUnitKind converts a string (any casing) into a UnitKind.
func ParseUnitKind(s string) (UnitKind, error) {
	k := UnitKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range UnitKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown unit kind %q", s)
}

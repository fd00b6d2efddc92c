package domain

import "errors"

// Reason classifies why a buy or sell order was refused. Refusals are
// ordinary results, not faults: the UI renders them inline, so the
// transaction processor reports them on the result instead of failing.
type Reason string

const (
	ReasonLocationMismatch      Reason = "location_mismatch"
	ReasonNotAvailable          Reason = "not_available"
	ReasonPriceUnavailable      Reason = "price_unavailable"
	ReasonInsufficientFunds     Reason = "insufficient_funds"
	ReasonInsufficientInventory Reason = "insufficient_inventory"
	ReasonInsufficientQuantity  Reason = "insufficient_quantity"
)

// Sentinel errors for genuine faults (as opposed to trade refusals).
// The handler layer maps these to HTTP status codes.
var (
	ErrUnknownCommodity = errors.New("unknown_commodity")
	ErrUnknownUnitKind  = errors.New("unknown_unit_kind")
	ErrNoSuchUnit       = errors.New("no_such_unit")
	ErrInsufficientFuel = errors.New("insufficient_fuel")
)

// ValidationError represents a request validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

package model

import (
	"errors"
	"fmt"
)

// ===================================
// DOMAIN ERRORS
// ===================================

var (
	// ErrInvalidInput is returned for malformed or out-of-range arguments
	// (unparseable expiry date, negative or impossible stock correction).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientStock is returned when a delivery or waste request
	// exceeds the remaining units of a batch.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrNotFound is returned when a product, supplier, expiry date or
	// numeric id does not resolve to a known batch or product.
	ErrNotFound = errors.New("not found")

	// ErrInvariantViolation is returned by the defensive remaining-units
	// recomputation. It indicates a logic bug: the guards on deliver,
	// waste and stock correction make it unreachable in correct usage.
	ErrInvariantViolation = errors.New("invariant violation")
)

// ===================================
// ERROR CONSTRUCTORS
// ===================================

// NewInvalidExpiryDateError reports an expiry date that could not be parsed.
func NewInvalidExpiryDateError(raw string) error {
	return fmt.Errorf("%w: expiry date %q is not a valid %s date", ErrInvalidInput, raw, DateFormat)
}

// NewInvalidStockCountError reports an impossible stock-count correction.
func NewInvalidStockCountError(newCount, deliveredUnits int) error {
	return fmt.Errorf("%w: stock count %d must be non-negative and at least the %d units already delivered",
		ErrInvalidInput, newCount, deliveredUnits)
}

// NewDuplicateBatchError reports an add colliding with an already
// indexed (product, supplier, expiry date) key.
func NewDuplicateBatchError(productName, supplier, expiryDate string) error {
	return fmt.Errorf("%w: a batch of %q from %q expiring %s already exists, correct its stock count instead",
		ErrInvalidInput, productName, supplier, expiryDate)
}

// NewValidationError wraps a request-validation failure.
func NewValidationError(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// NewNegativeUnitsError reports a negative delivery/waste quantity.
func NewNegativeUnitsError(units int) error {
	return fmt.Errorf("%w: units must be non-negative, got %d", ErrInvalidInput, units)
}

// NewInsufficientStockError reports a delivery/waste exceeding remaining units.
func NewInsufficientStockError(requested, remaining int) error {
	return fmt.Errorf("%w: requested=%d, remaining=%d", ErrInsufficientStock, requested, remaining)
}

// NewProductNotFoundError reports an unknown product name.
func NewProductNotFoundError(productName string) error {
	return fmt.Errorf("%w: product %q", ErrNotFound, productName)
}

// NewSupplierNotFoundError reports an unknown supplier under a known product.
func NewSupplierNotFoundError(productName, supplier string) error {
	return fmt.Errorf("%w: supplier %q for product %q", ErrNotFound, supplier, productName)
}

// NewBatchNotFoundError reports that no batch exists at an expiry date.
func NewBatchNotFoundError(productName, supplier, expiryDate string) error {
	return fmt.Errorf("%w: no batch of %q from %q expiring %s", ErrNotFound, productName, supplier, expiryDate)
}

// NewBatchIDNotFoundError reports an unknown numeric batch id.
func NewBatchIDNotFoundError(batchID int64) error {
	return fmt.Errorf("%w: batch id %d", ErrNotFound, batchID)
}

// NewProductIDNotFoundError reports an unknown numeric product id.
func NewProductIDNotFoundError(productID int64) error {
	return fmt.Errorf("%w: product id %d", ErrNotFound, productID)
}

// NewNegativeRemainingError reports the defensive remaining-units check firing.
func NewNegativeRemainingError(total, delivered, wasted int) error {
	return fmt.Errorf("%w: remaining units would drop below zero (total=%d, delivered=%d, wasted=%d)",
		ErrInvariantViolation, total, delivered, wasted)
}

// ===================================
// ERROR HELPERS
// ===================================

// IsInvalidInputError checks if err is an invalid-input error.
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInsufficientStockError checks if err is an insufficient-stock error.
func IsInsufficientStockError(err error) bool {
	return errors.Is(err, ErrInsufficientStock)
}

// IsNotFoundError checks if err is a not-found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvariantViolationError checks if err is an invariant violation.
func IsInvariantViolationError(err error) bool {
	return errors.Is(err, ErrInvariantViolation)
}

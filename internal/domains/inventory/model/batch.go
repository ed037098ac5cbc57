package model

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for expiry and received dates.
const DateFormat = "2006-01-02"

// Freshness is the categorical expiry standing of a batch,
// derived from days-to-expiry.
type Freshness string

const (
	FreshnessFresh    Freshness = "FRESH"
	FreshnessExpiring Freshness = "EXPIRING"
	FreshnessExpired  Freshness = "EXPIRED"
)

// LogEntry is one line of a batch's append-only audit log.
type LogEntry struct {
	Comment        string    `json:"comment"`
	Timestamp      time.Time `json:"timestamp"`
	RemainingUnits int       `json:"remaining_units"`
}

// Batch is the authoritative per-shipment stock ledger and freshness
// state machine. At all times:
//
//	RemainingUnits == TotalStockCount - DeliveredUnits - WastedUnits >= 0
//	DeliveredUnits <= TotalStockCount
//
// Once Freshness is EXPIRED, all remaining units have been force-wasted
// and RemainingUnits is 0. Batches are never deleted; the log persists
// for the process lifetime.
type Batch struct {
	ID              int64
	Product         Product
	TotalStockCount int
	ReceivedDate    time.Time
	ExpiryDate      time.Time
	DeliveredUnits  int
	WastedUnits     int
	RemainingUnits  int
	FreshnessState  Freshness

	log []LogEntry

	// now supplies the batch's notion of "today"; injected by the owning
	// warehouse so freshness evaluation is deterministic under test.
	now func() time.Time
}

// newBatch constructs a batch for the given product and stock count.
// The id is assigned by the owning warehouse. The log is seeded with a
// "NEW BATCH ADDED" entry and freshness is evaluated once immediately,
// which may force-waste the whole batch if it arrives already expired.
func newBatch(id int64, product Product, totalStockCount int, expiryDate string, now func() time.Time) (*Batch, error) {
	if totalStockCount < 0 {
		return nil, NewInvalidStockCountError(totalStockCount, 0)
	}

	expiry, err := time.Parse(DateFormat, expiryDate)
	if err != nil {
		return nil, NewInvalidExpiryDateError(expiryDate)
	}

	b := &Batch{
		ID:              id,
		Product:         product,
		TotalStockCount: totalStockCount,
		ReceivedDate:    now(),
		ExpiryDate:      expiry,
		RemainingUnits:  totalStockCount,
		FreshnessState:  FreshnessFresh,
		now:             now,
	}

	b.appendLog("NEW BATCH ADDED")
	b.EvaluateFreshness()

	return b, nil
}

// appendLog records a state change with the current remaining units.
func (b *Batch) appendLog(comment string) {
	b.log = append(b.log, LogEntry{
		Comment:        comment,
		Timestamp:      b.now(),
		RemainingUnits: b.RemainingUnits,
	})
}

// recomputeRemaining derives RemainingUnits from the three counters.
// A negative result is a consistency assertion failure, not a user error:
// the guards on Deliver, Waste and UpdateTotalStockCount make it unreachable.
func (b *Batch) recomputeRemaining() error {
	remaining := b.TotalStockCount - b.DeliveredUnits - b.WastedUnits
	if remaining < 0 {
		return NewNegativeRemainingError(b.TotalStockCount, b.DeliveredUnits, b.WastedUnits)
	}

	b.RemainingUnits = remaining
	return nil
}

// Deliver sends units out to customers. All-or-nothing: if units exceed
// the remaining stock the batch is left unchanged.
func (b *Batch) Deliver(units int) error {
	if units < 0 {
		return NewNegativeUnitsError(units)
	}
	if units > b.RemainingUnits {
		return NewInsufficientStockError(units, b.RemainingUnits)
	}

	b.DeliveredUnits += units
	if err := b.recomputeRemaining(); err != nil {
		return err
	}

	b.appendLog(fmt.Sprintf("%d units DELIVERED", units))
	return nil
}

// Waste writes off lost, defective or spoiled units. All-or-nothing,
// same as Deliver.
func (b *Batch) Waste(units int) error {
	if units < 0 {
		return NewNegativeUnitsError(units)
	}
	if units > b.RemainingUnits {
		return NewInsufficientStockError(units, b.RemainingUnits)
	}

	b.WastedUnits += units
	if err := b.recomputeRemaining(); err != nil {
		return err
	}

	b.appendLog(fmt.Sprintf("%d units WASTED", units))
	return nil
}

// UpdateTotalStockCount corrects the originally received quantity, e.g.
// after a clerical error. The correction cannot be negative and cannot
// drop below the units already delivered. On success the remaining count
// is recomputed, freshness is re-evaluated and the correction is logged.
func (b *Batch) UpdateTotalStockCount(newCount int) error {
	if newCount < 0 || newCount < b.DeliveredUnits {
		return NewInvalidStockCountError(newCount, b.DeliveredUnits)
	}
	// Reject before assigning anything: a correction below the units
	// already delivered and wasted must leave the batch untouched.
	if newCount-b.DeliveredUnits-b.WastedUnits < 0 {
		return NewNegativeRemainingError(newCount, b.DeliveredUnits, b.WastedUnits)
	}

	b.TotalStockCount = newCount
	if err := b.recomputeRemaining(); err != nil {
		return err
	}

	b.appendLog(fmt.Sprintf("Original stock amount updated to %d", newCount))
	b.EvaluateFreshness()
	return nil
}

// EvaluateFreshness recomputes the freshness category from days-to-expiry
// and applies the resulting transition. This MUTATES the batch: crossing
// into EXPIRED force-wastes every remaining unit and both downgrade
// transitions append a log entry. Freshness is downgrade-only; a batch
// never returns to FRESH. Transitions are idempotent: re-evaluating a
// batch already in its terminal category changes nothing and logs nothing.
//
// Callers that must not mutate should read Freshness() instead.
func (b *Batch) EvaluateFreshness() Freshness {
	delta := daysUntil(b.now(), b.ExpiryDate)

	switch {
	case delta < -1:
		if b.FreshnessState == FreshnessExpired {
			break
		}
		b.FreshnessState = FreshnessExpired
		if b.RemainingUnits > 0 {
			// Force-waste through the waste path so the write-off is audited.
			_ = b.Waste(b.RemainingUnits)
		}
		b.appendLog("BATCH EXPIRED")
	case delta < 2:
		if b.FreshnessState != FreshnessFresh {
			break
		}
		b.FreshnessState = FreshnessExpiring
		b.appendLog("BATCH EXPIRING")
	}

	return b.FreshnessState
}

// Freshness returns the current category without re-evaluating it.
// This is the pure accessor; most reads should go through
// EvaluateFreshness so the category tracks the calendar.
func (b *Batch) Freshness() Freshness {
	return b.FreshnessState
}

// Log returns a copy of the audit log in append order.
func (b *Batch) Log() []LogEntry {
	entries := make([]LogEntry, len(b.log))
	copy(entries, b.log)
	return entries
}

// Inventory returns the (product name, remaining units) snapshot.
func (b *Batch) Inventory() (string, int) {
	return b.Product.ProductName, b.RemainingUnits
}

// daysUntil counts whole calendar days from now's date to expiry's date,
// ignoring time of day. Negative when expiry is in the past.
func daysUntil(now, expiry time.Time) int {
	truncate := func(t time.Time) time.Time {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return int(truncate(expiry).Sub(truncate(now)).Hours() / 24)
}

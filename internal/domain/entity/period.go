// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"
)

// monthNames is 1-indexed to match Period.Month; index 0 is unused.
var monthNames = [13]string{
	"",
	"JANEIRO", "FEVEREIRO", "MARÇO", "ABRIL", "MAIO", "JUNHO",
	"JULHO", "AGOSTO", "SETEMBRO", "OUTUBRO", "NOVEMBRO", "DEZEMBRO",
}

// Period is a (month, year) pair used as the partition key for transaction
// queries.
type Period struct {
	Month int // 1-12
	Year  int
}

// Valid reports whether the month is in range.
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12
}

// Label renders the period as "MONTH YEAR", e.g. "MARÇO 2026".
func (p Period) Label() string {
	if !p.Valid() {
		return ""
	}
	return fmt.Sprintf("%s %d", monthNames[p.Month], p.Year)
}

// PeriodCursor tracks the currently viewed period and exposes month-stepping
// operations. Stepping is reversible: NextMonth followed by PreviousMonth
// returns to the original period. Year boundaries roll at December/January.
type PeriodCursor struct {
	anchor time.Time
	now    func() time.Time
}

// NewPeriodCursor creates a cursor anchored at the current date.
func NewPeriodCursor() *PeriodCursor {
	return NewPeriodCursorAt(time.Now)
}

// NewPeriodCursorAt creates a cursor with an injectable clock.
func NewPeriodCursorAt(now func() time.Time) *PeriodCursor {
	return &PeriodCursor{anchor: now(), now: now}
}

// Period returns the currently viewed (month, year).
func (c *PeriodCursor) Period() Period {
	return Period{Month: int(c.anchor.Month()), Year: c.anchor.Year()}
}

// Month returns the current month, 1-12.
func (c *PeriodCursor) Month() int { return int(c.anchor.Month()) }

// Year returns the current year.
func (c *PeriodCursor) Year() int { return c.anchor.Year() }

// Label returns the "MONTH YEAR" label of the current period.
func (c *PeriodCursor) Label() string { return c.Period().Label() }

// PreviousMonth shifts the anchor back exactly one calendar month.
func (c *PeriodCursor) PreviousMonth() { c.step(-1) }

// NextMonth shifts the anchor forward exactly one calendar month.
func (c *PeriodCursor) NextMonth() { c.step(1) }

// Today resets the anchor to the current date.
func (c *PeriodCursor) Today() { c.anchor = c.now() }

// step normalizes to the first of the month before shifting so that stepping
// from e.g. January 31st cannot skip February.
func (c *PeriodCursor) step(months int) {
	first := time.Date(c.anchor.Year(), c.anchor.Month(), 1, 0, 0, 0, 0, c.anchor.Location())
	c.anchor = first.AddDate(0, months, 0)
}

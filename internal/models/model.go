package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are stored and exchanged as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultModel is the base model for all persisted entities.
type DefaultModel struct {
	ID string `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the resource
	Timestamps
}

// Timestamps holds the creation and modification time of an entity.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048Z"` // Last time the resource was updated
}

// Now returns the current time in the precision that survives
// an ISO-8601 round trip.
func Now() time.Time {
	return Timestamp(time.Now())
}

// Timestamp converts t to UTC and truncates it to milliseconds.
func Timestamp(t time.Time) time.Time {
	return t.In(time.UTC).Truncate(time.Millisecond)
}

// normalize makes sure the timestamps use UTC as time zone.
//
// Timestamps decoded from JSON keep the offset they were written
// with, e.g. +02:00 for documents exported on another machine.
func (t *Timestamps) normalize() {
	t.CreatedAt = Timestamp(t.CreatedAt)
	t.UpdatedAt = Timestamp(t.UpdatedAt)
}

// Touch sets the modification time.
func (t *Timestamps) Touch(now time.Time) {
	t.UpdatedAt = now
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// FuelEntry is one fill-up recorded by a user.
//
// TotalCost is supplied by the caller and stored verbatim; it is never
// recomputed from Liters and PricePerLiter.
type FuelEntry struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Liters          float64   `json:"liters"`
	PricePerLiter   float64   `json:"price_per_liter"`
	TotalCost       float64   `json:"total_cost"`
	DateTime        time.Time `json:"date_time"`
	OdometerReading *float64  `json:"odometer_reading"`
}

// HasOdometer reports whether the entry carries an odometer reading.
func (e FuelEntry) HasOdometer() bool {
	return e.OdometerReading != nil
}

// FuelEntryData is the user-editable part of a fuel entry, as sent by
// clients when creating entries.
type FuelEntryData struct {
	Liters          float64   `json:"liters"`
	PricePerLiter   float64   `json:"price_per_liter"`
	TotalCost       float64   `json:"total_cost"`
	DateTime        time.Time `json:"date_time"`
	OdometerReading *float64  `json:"odometer_reading,omitempty"`
}

// NewFuelEntry builds a full entry from client data and server-assigned
// identifiers.
func NewFuelEntry(id, userID string, data FuelEntryData) FuelEntry {
	return FuelEntry{
		ID:              id,
		UserID:          userID,
		Liters:          data.Liters,
		PricePerLiter:   data.PricePerLiter,
		TotalCost:       data.TotalCost,
		DateTime:        data.DateTime,
		OdometerReading: data.OdometerReading,
	}
}

// Apply merges a partial update into the entry. Fields that are nil in u keep
// their current value. OdometerReading can be set but never cleared.
func (e *FuelEntry) Apply(u UpdateFuelEntryRequest) {
	if u.Liters != nil {
		e.Liters = *u.Liters
	}
	if u.PricePerLiter != nil {
		e.PricePerLiter = *u.PricePerLiter
	}
	if u.TotalCost != nil {
		e.TotalCost = *u.TotalCost
	}
	if u.DateTime != nil {
		e.DateTime = *u.DateTime
	}
	if u.OdometerReading != nil {
		reading := *u.OdometerReading
		e.OdometerReading = &reading
	}
}

// FuelEntryRecord is the persisted form of a fuel entry: an opaque JSON
// document keyed by (ID, UserID). Storing the entry as a document keeps the
// table schema stable while the entry shape evolves.
type FuelEntryRecord struct {
	ID     string
	UserID string
	Data   []byte
}

// EncodeFuelEntry serializes an entry into its stored record.
func EncodeFuelEntry(entry FuelEntry) (FuelEntryRecord, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return FuelEntryRecord{}, fmt.Errorf("error encoding fuel entry %s: %w", entry.ID, err)
	}

	return FuelEntryRecord{ID: entry.ID, UserID: entry.UserID, Data: data}, nil
}

// Decode parses the stored document back into a [FuelEntry]. The record's
// key columns win over whatever identifiers the document carries.
func (r FuelEntryRecord) Decode() (FuelEntry, error) {
	var entry FuelEntry
	if err := json.Unmarshal(r.Data, &entry); err != nil {
		return FuelEntry{}, fmt.Errorf("error decoding fuel entry %s: %w", r.ID, err)
	}

	entry.ID = r.ID
	entry.UserID = r.UserID

	return entry, nil
}

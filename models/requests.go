package models

import "time"

// CreateFuelEntryRequest is the body of POST /api/fuel-entries.
type CreateFuelEntryRequest struct {
	UserID string `json:"user_id"`
	FuelEntryData
}

// CreateFuelEntriesRequest is the body of POST /api/fuel-entries/bulk.
type CreateFuelEntriesRequest struct {
	UserID  string          `json:"user_id"`
	Entries []FuelEntryData `json:"entries"`
}

// UpdateFuelEntryRequest carries a partial update. Nil fields are left
// untouched.
type UpdateFuelEntryRequest struct {
	Liters          *float64   `json:"liters,omitempty"`
	PricePerLiter   *float64   `json:"price_per_liter,omitempty"`
	TotalCost       *float64   `json:"total_cost,omitempty"`
	DateTime        *time.Time `json:"date_time,omitempty"`
	OdometerReading *float64   `json:"odometer_reading,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u UpdateFuelEntryRequest) IsEmpty() bool {
	return u.Liters == nil && u.PricePerLiter == nil && u.TotalCost == nil &&
		u.DateTime == nil && u.OdometerReading == nil
}

// DeleteFuelEntriesRequest is the body of POST /api/fuel-entries/bulk/delete.
type DeleteFuelEntriesRequest struct {
	UserID   string   `json:"user_id"`
	EntryIDs []string `json:"entry_ids"`
}

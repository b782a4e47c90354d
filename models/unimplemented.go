package models

// StatusNotComputed marks a report value that is a fixed constant rather
// than a statistic derived from stored data.
const StatusNotComputed = "not_computed"

// Unimplemented wraps a report value that is not derived from data yet.
// It serializes as {"value": ..., "status": "not_computed"} so clients can
// tell it apart from real statistics.
type Unimplemented[T any] struct {
	Value  T      `json:"value"`
	Status string `json:"status"`
}

// NotComputed returns v wrapped as a placeholder.
func NotComputed[T any](v T) Unimplemented[T] {
	return Unimplemented[T]{Value: v, Status: StatusNotComputed}
}

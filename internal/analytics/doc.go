// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package analytics builds the dashboard report from in-memory users and
// fuel entries.
//
// The [Engine] is a pure function over the slices it is given: it performs
// no I/O, keeps no state between calls and never mutates its input, so one
// Engine may serve concurrent requests. The only time-dependent values (the
// forecast month labels and GeneratedAt) come from the injected [Clock].
//
// The report is assembled from independent sections, one per file:
//   - totals.go:     corpus totals and top-N rankings;
//   - buckets.go:    monthly, registration, weekday and fill-up size buckets;
//   - efficiency.go: per-user efficiency scores and odometer distances;
//   - cost.go:       cost distribution and top spenders;
//   - behavior.go:   per-user activity;
//   - forecast.go:   six-month linear extrapolations and price trends.
//
// Values that are not derived from data are emitted through
// [models.Unimplemented] (see placeholders.go).
package analytics

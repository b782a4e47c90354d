// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the fuelctl process runtime.
//
// It wires the HTTP server adapter, the on-disk session store and the cobra
// command tree into a single runnable application.
package client

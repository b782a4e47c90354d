// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// fuel-keeper server handlers and middleware.
//
// All Msg* constants are the short titles written into the "error" field of
// [models.ErrorResponse]. The "details" field carries the request-specific
// explanation. Keeping the titles in one place ensures consistent wording
// throughout the API.
package app

const (
	// request validation

	// MsgInvalidRequestBody is returned when the body cannot be decoded as JSON.
	MsgInvalidRequestBody = "Invalid request body"
	MsgInvalidRequest     = "Invalid request"

	// MsgInvalidCredentials is returned when sign-up or sign-in data is missing or wrong.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgInvalidFuelEntry is returned when an entry lacks a required field.
	MsgInvalidFuelEntry  = "Invalid fuel entry"
	MsgInvalidUserID     = "Invalid user ID"
	MsgEmptyEntriesList  = "Empty entries list"
	MsgEmptyEntryIDsList = "Empty entry IDs list"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not match the body.
	MsgIntegrityCheckFailed = "Integrity check failed"

	// auth
	MsgUserAlreadyExists = "User already exists"

	// MsgAdminDisabled is returned when no admin credentials are configured.
	MsgAdminDisabled = "Admin access disabled"
	MsgForbidden     = "Forbidden"
	MsgUnauthorized  = "Unauthorized"

	// lookups
	MsgUserNotFound      = "User not found"
	MsgNotFound          = "Not found"
	MsgFuelEntryNotFound = "Fuel entry not found"

	// server-side failures
	MsgAuthenticationFailed = "Authentication failed"
	MsgDatabaseError        = "Database error"
	MsgFailedToCreateUser   = "Failed to create user"

	// MsgFailedToCreateUserAccount is returned when sign-in could not register an unknown email.
	MsgFailedToCreateUserAccount = "Failed to create user account"
	MsgFailedToReadBody          = "Failed to read request body"
	MsgPasswordProcessingFailed  = "Password processing failed"
	MsgFailedToCreateFuelEntry   = "Failed to create fuel entry"
	MsgFailedToCreateFuelEntries = "Failed to create fuel entries"
	MsgFailedToGetFuelEntries    = "Failed to get fuel entries"
	MsgFailedToGetFuelEntry      = "Failed to get fuel entry"
	MsgFailedToUpdateFuelEntry   = "Failed to update fuel entry"
	MsgFailedToDeleteFuelEntry   = "Failed to delete fuel entry"
	MsgFailedToDeleteFuelEntries = "Failed to delete fuel entries"
	MsgFailedToDeleteUser        = "Failed to delete user"
	MsgFailedToGetDashboard      = "Failed to get dashboard statistics"
	MsgFailedToGetStatistics     = "Failed to get statistics"
	MsgFailedToGetUsers          = "Failed to get users"
)

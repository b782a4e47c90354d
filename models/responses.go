package models

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// MessageResponse is returned by operations that have nothing else to say.
type MessageResponse struct {
	Message string `json:"message"`
}

// BulkCreateResponse is returned after a bulk insert.
type BulkCreateResponse struct {
	Message string      `json:"message"`
	Count   int         `json:"count"`
	Entries []FuelEntry `json:"entries"`
}

// BulkDeleteResult is what the store reports after a bulk delete: the IDs
// that existed and were removed.
type BulkDeleteResult struct {
	DeletedIDs []string
}

// BulkDeleteResponse is returned after a bulk delete. Requested IDs that did
// not exist (or belong to another user) are counted in NotFoundCount.
type BulkDeleteResponse struct {
	Message        string   `json:"message"`
	DeletedCount   int      `json:"deleted_count"`
	TotalRequested int      `json:"total_requested"`
	NotFoundCount  int      `json:"not_found_count"`
	DeletedIDs     []string `json:"deleted_ids"`
}

// UserDeletedResponse is returned after an admin removes a user.
type UserDeletedResponse struct {
	Message        string `json:"message"`
	DeletedEntries int    `json:"deleted_entries"`
}

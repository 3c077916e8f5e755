// Package models defines server-side data models persisted in the database.
package models

import "time"

// File describes an uploaded object. The content itself lives in object
// storage under Key; only metadata is kept in the database.
type File struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// Size is the client-reported size in bytes.
	Size int64 `json:"size"`
	// Key is the storage key returned by the upload coordinator, without
	// the bucket-side prefix.
	Key        string    `json:"key"`
	UploadedAt time.Time `json:"uploadedAt"`
	OwnerID    int64     `json:"userId"`
}

// UploadTicket is handed to a client that wants to upload a file directly
// to object storage.
type UploadTicket struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	// ExpiresIn is the URL lifetime in seconds.
	ExpiresIn int64 `json:"expiresIn"`
}

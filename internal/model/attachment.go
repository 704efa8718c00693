package model

import "time"

// Attachment is an uploaded financial-statement file tied to an application.
// The bytes live in object storage under StoragePath; this record is the
// metadata row.
type Attachment struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"storage_path"`
	Size          int64     `json:"size"`
	ContentType   string    `json:"content_type"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

package clientcli

import "time"

// UploadOptions configures an upload operation.
type UploadOptions struct {
	LocalPath   string
	ContentType string // optional, auto-detect if empty
	Title       string
	Description string
	TakenAt     string
}

// UploadResult represents the result of uploading a single photo.
type UploadResult struct {
	LocalPath   string    `json:"localPath"`
	PhotoID     string    `json:"photoId"`
	ObjectKey   string    `json:"objectKey"`
	ContentType string    `json:"contentType,omitempty"`
	Title       string    `json:"title,omitempty"`
	Size        int64     `json:"sizeBytes"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// Grant mirrors the upload-url response from the server.
type Grant struct {
	PhotoID     string    `json:"photoId"`
	ObjectKey   string    `json:"objectKey"`
	UploadURL   string    `json:"uploadUrl"`
	ContentType string    `json:"contentType,omitempty"`
	Title       string    `json:"title,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt"`
	ExpiresIn   int64     `json:"expiresInSeconds"`
}

// Photo mirrors a single photo's metadata as returned by the server.
type Photo struct {
	FamilyID    string    `json:"familyId"`
	PhotoID     string    `json:"photoId"`
	ObjectKey   string    `json:"objectKey"`
	UploadedAt  time.Time `json:"uploadedAt"`
	ContentType string    `json:"contentType,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	TakenAt     string    `json:"takenAt,omitempty"`
}

// recordRequest is the body sent when recording photo metadata.
type recordRequest struct {
	PhotoID     string `json:"photoId"`
	ObjectKey   string `json:"objectKey,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	TakenAt     string `json:"takenAt,omitempty"`
}

// uploadURLRequest is the body sent when requesting an upload grant.
type uploadURLRequest struct {
	ContentType string `json:"contentType,omitempty"`
	Title       string `json:"title,omitempty"`
}

// photoList mirrors the list response envelope from the server.
type photoList struct {
	Items []Photo `json:"items"`
}

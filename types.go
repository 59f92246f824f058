package pawtrait

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// PhotoMetadata is a single photo's stored record. Photos are keyed by the
// (FamilyID, PhotoID) pair; repeated records for the same pair overwrite the
// previous item. ContentType and the free-form fields are client-supplied
// passthrough and are not validated against the uploaded bytes.
type PhotoMetadata struct {
	FamilyID    string    `json:"familyId" dynamodbav:"familyId"`
	PhotoID     string    `json:"photoId" dynamodbav:"photoId"`
	ObjectKey   string    `json:"objectKey" dynamodbav:"objectKey"`
	UploadedAt  time.Time `json:"uploadedAt" dynamodbav:"uploadedAt"`
	ContentType string    `json:"contentType,omitempty" dynamodbav:"contentType,omitempty"`
	Title       string    `json:"title,omitempty" dynamodbav:"title,omitempty"`
	Description string    `json:"description,omitempty" dynamodbav:"description,omitempty"`
	TakenAt     string    `json:"takenAt,omitempty" dynamodbav:"takenAt,omitempty"`
}

// UploadRequest carries the optional client-supplied fields for an upload
// grant. ContentType constrains the presigned PUT; Title is echoed back so
// the client can pass it along when recording metadata.
type UploadRequest struct {
	ContentType string `json:"contentType"`
	Title       string `json:"title"`
}

// UploadGrant is a minted presigned upload. The client PUTs the photo bytes
// to UploadURL before ExpiresAt, then records metadata reusing PhotoID and
// ObjectKey verbatim.
type UploadGrant struct {
	PhotoID     string    `json:"photoId"`
	ObjectKey   string    `json:"objectKey"`
	UploadURL   string    `json:"uploadUrl"`
	ContentType string    `json:"contentType,omitempty"`
	Title       string    `json:"title,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt"`
	ExpiresIn   int64     `json:"expiresInSeconds"`
}

// RecordRequest is the body of a metadata record call. PhotoID is required;
// ObjectKey is derived from the family id, photo id, and content type when
// absent.
type RecordRequest struct {
	PhotoID     string `json:"photoId"`
	ObjectKey   string `json:"objectKey"`
	ContentType string `json:"contentType"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TakenAt     string `json:"takenAt"`
}

// PhotoList is the response envelope for listing a family's photos.
type PhotoList struct {
	Items []PhotoMetadata `json:"items"`
}

var validTableNameRegex = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// IsValidTableName checks if a table name is valid (lowercase, alphanumeric with underscores, max 63 chars).
func IsValidTableName(name string) bool {
	return validTableNameRegex.MatchString(name) && len(name) <= 63
}

// ValidateTableName returns a descriptive error for an empty or invalid table name.
func ValidateTableName(name string) error {
	if name == "" {
		return errors.New("validate table: table name cannot be empty")
	}

	if !IsValidTableName(name) {
		return fmt.Errorf("validate table: invalid table name: %s (must match ^[a-z_][a-z0-9_]*$ and be <= 63 chars)", name)
	}

	return nil
}

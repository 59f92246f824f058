package pawtrait

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// extByContentType maps the content types photos are commonly uploaded with
// to an object-key extension. Unknown types get no extension.
var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/heic": ".heic",
	"image/heif": ".heif",
}

// ExtensionForContentType returns the object-key extension for a MIME type.
// Parameters after a semicolon are ignored.
func ExtensionForContentType(contentType string) string {
	ct := contentType
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return extByContentType[strings.ToLower(strings.TrimSpace(ct))]
}

// ObjectKeyFor builds the storage key for a photo: {familyId}/{photoId}{ext}.
func ObjectKeyFor(familyID, photoID, contentType string) string {
	return familyID + "/" + photoID + ExtensionForContentType(contentType)
}

// IsValidID validates a family or photo identifier. Identifiers become path
// segments of object keys, so it rejects:
//   - empty strings, "." and ".."
//   - anything longer than 128 bytes
//   - "/" (would break the {familyId}/{photoId} key scheme)
//   - invalid characters: \ ? # ~ %
//   - invalid UTF-8
//   - null bytes, control characters (< 0x20), DEL (0x7f), and whitespace
//
// Returns true if the identifier is valid, false otherwise.
func IsValidID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}

	if len(id) > 128 {
		return false
	}

	if strings.ContainsAny(id, `/\?#~%`) {
		return false
	}

	if !utf8.ValidString(id) {
		return false
	}

	for _, r := range id {
		if r == 0 || r < 0x20 || r == 0x7f || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}

package clientcli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats results for output.
type Formatter interface {
	FormatUpload(w io.Writer, result *UploadResult) error
	FormatList(w io.Writer, photos []Photo) error
	FormatURL(w io.Writer, url string) error
	FormatError(w io.Writer, err error) error
	FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error
	FormatProfileShow(w io.Writer, profile Profile, isDefault bool) error
}

// NewFormatter returns the appropriate formatter based on flags.
func NewFormatter(jsonOutput, quiet bool) Formatter {
	if jsonOutput {
		return &JSONFormatter{}
	}
	return &HumanFormatter{Quiet: quiet}
}

// HumanFormatter outputs human-readable text.
type HumanFormatter struct {
	Quiet bool
}

// FormatUpload formats an upload result as human-readable text.
func (f *HumanFormatter) FormatUpload(w io.Writer, result *UploadResult) error {
	if f.Quiet {
		_, _ = fmt.Fprintln(w, result.PhotoID)
		return nil
	}
	_, _ = fmt.Fprintf(w, "Uploaded: %s (%s)\n", result.LocalPath, formatSize(result.Size))
	_, _ = fmt.Fprintf(w, "  Photo ID:   %s\n", result.PhotoID)
	_, _ = fmt.Fprintf(w, "  Object key: %s\n", result.ObjectKey)
	if result.Title != "" {
		_, _ = fmt.Fprintf(w, "  Title:      %s\n", result.Title)
	}
	return nil
}

// FormatList formats photos as a human-readable table.
func (f *HumanFormatter) FormatList(w io.Writer, photos []Photo) error {
	if len(photos) == 0 {
		_, _ = fmt.Fprintln(w, "No photos found")
		return nil
	}

	// Calculate column widths
	maxIDLen := 8     // "PHOTO ID"
	maxTitleLen := 5  // "TITLE"
	for i := range photos {
		if len(photos[i].PhotoID) > maxIDLen {
			maxIDLen = len(photos[i].PhotoID)
		}
		if len(photos[i].Title) > maxTitleLen {
			maxTitleLen = len(photos[i].Title)
		}
	}
	if maxIDLen > 40 {
		maxIDLen = 40
	}
	if maxTitleLen > 30 {
		maxTitleLen = 30
	}

	// Print header
	_, _ = fmt.Fprintf(w, "%-*s  %-*s  %s\n", maxIDLen, "PHOTO ID", maxTitleLen, "TITLE", "UPLOADED")
	_, _ = fmt.Fprintf(w, "%s  %s  %s\n", strings.Repeat("-", maxIDLen), strings.Repeat("-", maxTitleLen), strings.Repeat("-", 19))

	// Print items
	for i := range photos {
		p := &photos[i]
		id := p.PhotoID
		if len(id) > maxIDLen {
			id = id[:maxIDLen-3] + "..."
		}
		title := p.Title
		if title == "" {
			title = "-"
		}
		if len(title) > maxTitleLen {
			title = title[:maxTitleLen-3] + "..."
		}
		_, _ = fmt.Fprintf(w, "%-*s  %-*s  %s\n",
			maxIDLen, id,
			maxTitleLen, title,
			p.UploadedAt.Format("2006-01-02 15:04:05"),
		)
	}

	// Print summary
	_, _ = fmt.Fprintf(w, "\n%d photo(s)\n", len(photos))

	return nil
}

// FormatURL formats a resolved content URL as human-readable text.
func (f *HumanFormatter) FormatURL(w io.Writer, url string) error {
	_, _ = fmt.Fprintln(w, url)
	return nil
}

// FormatError formats an error as human-readable text.
func (f *HumanFormatter) FormatError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// FormatProfileList formats a list of profiles as human-readable text.
func (f *HumanFormatter) FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error {
	// Calculate column widths
	maxNameLen := 4     // "NAME"
	maxEndpointLen := 8 // "ENDPOINT"
	for i := range profiles {
		if len(profiles[i].Name) > maxNameLen {
			maxNameLen = len(profiles[i].Name)
		}
		if len(profiles[i].Endpoint) > maxEndpointLen {
			maxEndpointLen = len(profiles[i].Endpoint)
		}
	}
	if maxNameLen > 20 {
		maxNameLen = 20
	}
	if maxEndpointLen > 50 {
		maxEndpointLen = 50
	}

	// Print header
	_, _ = fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxNameLen, "NAME", maxEndpointLen, "ENDPOINT", "FAMILY ID")
	_, _ = fmt.Fprintf(w, "  %s  %s  %s\n", strings.Repeat("-", maxNameLen), strings.Repeat("-", maxEndpointLen), strings.Repeat("-", 20))

	// Print profiles
	for i := range profiles {
		p := &profiles[i]
		marker := " "
		if p.Name == defaultName {
			marker = "*"
		}

		name := p.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		}

		endpoint := p.Endpoint
		if len(endpoint) > maxEndpointLen {
			endpoint = endpoint[:maxEndpointLen-3] + "..."
		}

		familyID := p.FamilyID
		if familyID == "" {
			familyID = "(not set)"
		}

		_, _ = fmt.Fprintf(w, "%s %-*s  %-*s  %s\n", marker, maxNameLen, name, maxEndpointLen, endpoint, familyID)
	}

	return nil
}

// FormatProfileShow formats a single profile as human-readable text.
func (f *HumanFormatter) FormatProfileShow(w io.Writer, profile Profile, isDefault bool) error {
	_, _ = fmt.Fprintf(w, "Name:      %s", profile.Name)
	if isDefault {
		_, _ = fmt.Fprintf(w, " (default)")
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Endpoint:  %s\n", profile.Endpoint)
	familyID := profile.FamilyID
	if familyID == "" {
		familyID = "(not set)"
	}
	_, _ = fmt.Fprintf(w, "Family ID: %s\n", familyID)
	return nil
}

// JSONFormatter outputs JSON.
type JSONFormatter struct{}

// FormatUpload formats an upload result as JSON.
func (f *JSONFormatter) FormatUpload(w io.Writer, result *UploadResult) error {
	return writeJSON(w, result)
}

// FormatList formats photos as JSON.
func (f *JSONFormatter) FormatList(w io.Writer, photos []Photo) error {
	if photos == nil {
		photos = []Photo{}
	}
	output := struct {
		Items []Photo `json:"items"`
	}{
		Items: photos,
	}
	return writeJSON(w, output)
}

// FormatURL formats a resolved content URL as JSON.
func (f *JSONFormatter) FormatURL(w io.Writer, url string) error {
	output := struct {
		URL string `json:"url"`
	}{
		URL: url,
	}
	return writeJSON(w, output)
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return writeJSON(w, output)
}

// FormatProfileList formats a list of profiles as JSON.
func (f *JSONFormatter) FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error {
	type jsonProfile struct {
		Name     string `json:"name"`
		Endpoint string `json:"endpoint"`
		FamilyID string `json:"family_id,omitempty"`
		Default  bool   `json:"default,omitempty"`
	}

	output := struct {
		Profiles []jsonProfile `json:"profiles"`
	}{
		Profiles: make([]jsonProfile, len(profiles)),
	}

	for i := range profiles {
		p := &profiles[i]
		output.Profiles[i] = jsonProfile{
			Name:     p.Name,
			Endpoint: p.Endpoint,
			FamilyID: p.FamilyID,
			Default:  p.Name == defaultName,
		}
	}

	return writeJSON(w, output)
}

// FormatProfileShow formats a single profile as JSON.
func (f *JSONFormatter) FormatProfileShow(w io.Writer, profile Profile, isDefault bool) error {
	output := struct {
		Name     string `json:"name"`
		Endpoint string `json:"endpoint"`
		FamilyID string `json:"family_id,omitempty"`
		Default  bool   `json:"default"`
	}{
		Name:     profile.Name,
		Endpoint: profile.Endpoint,
		FamilyID: profile.FamilyID,
		Default:  isDefault,
	}

	return writeJSON(w, output)
}

// writeJSON writes a value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatSize formats bytes as human-readable size.
func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

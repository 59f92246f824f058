package allowlist

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadIDsFromFile loads family identifiers from a JSON file.
// The file should contain an array of strings:
//
//	["alice", "the-smiths", "grandma"]
//
// Returns the ids in file order.
func LoadIDsFromFile(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is from trusted config file
	if err != nil {
		return nil, fmt.Errorf("read allow-list file: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("parse allow-list file: %w", err)
	}

	return ids, nil
}

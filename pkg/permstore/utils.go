package permstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Score returns the percentage of granted sections in an entry, rounded
// to the nearest integer. An empty entry scores zero.
func Score(entry map[string]bool) int {
	if len(entry) == 0 {
		return 0
	}
	granted := 0
	for _, v := range entry {
		if v {
			granted++
		}
	}
	return int(math.Round(float64(granted) / float64(len(entry)) * 100))
}

// Format selects the wire format for Export and Import.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Export serializes a single merchant entry for admin tooling. JSON is
// indented; CSV carries a "Section,Granted" header with rows sorted by
// section ID for stable output.
func Export(entry map[string]bool, format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return "", errors.Join(ErrCorruptBlob, err)
		}
		return string(data), nil
	case FormatCSV:
		ids := make([]string, 0, len(entry))
		for id := range entry {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		lines := make([]string, 0, len(ids)+1)
		lines = append(lines, "Section,Granted")
		for _, id := range ids {
			lines = append(lines, fmt.Sprintf("%s,%t", id, entry[id]))
		}
		return strings.Join(lines, "\n"), nil
	default:
		return "", ErrUnknownFormat
	}
}

// Import parses an entry previously produced by Export.
func Import(data string, format Format) (map[string]bool, error) {
	switch format {
	case FormatJSON:
		var entry map[string]bool
		if err := json.Unmarshal([]byte(data), &entry); err != nil {
			return nil, errors.Join(ErrCorruptBlob, err)
		}
		return entry, nil
	case FormatCSV:
		lines := strings.Split(strings.TrimSpace(data), "\n")
		entry := make(map[string]bool)
		for i, line := range lines {
			if i == 0 {
				continue // header
			}
			id, value, ok := strings.Cut(strings.TrimSpace(line), ",")
			if !ok || id == "" {
				continue
			}
			entry[id] = value == "true"
		}
		return entry, nil
	default:
		return nil, ErrUnknownFormat
	}
}

// Change records a single permission flip between two entry snapshots.
type Change struct {
	Section   string    `json:"section"`
	Old       bool      `json:"old_value"`
	New       bool      `json:"new_value"`
	Timestamp time.Time `json:"timestamp"`
}

// Audit diffs two entries. Sections absent from the old entry are
// treated as previously disabled.
func Audit(oldEntry, newEntry map[string]bool) []Change {
	ids := make([]string, 0, len(newEntry))
	for id := range newEntry {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	now := time.Now().UTC()
	var changes []Change
	for _, id := range ids {
		oldValue := oldEntry[id]
		if oldValue != newEntry[id] {
			changes = append(changes, Change{
				Section:   id,
				Old:       oldValue,
				New:       newEntry[id],
				Timestamp: now,
			})
		}
	}
	return changes
}

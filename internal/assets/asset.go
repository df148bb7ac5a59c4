// Package assets holds the maintainable-equipment domain: asset records,
// the view filters applied to them, the category catalog and the dashboard
// stats summary.
package assets

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the textual form of a maintenance date at every boundary
// (seed files, SQLite rows, table cells).
const DateLayout = "2006-01-02"

// Status is the operational state of an asset.
type Status string

const (
	StatusOperational Status = "operational"
	StatusMaintenance Status = "maintenance"
	StatusCritical    Status = "critical"
)

// Statuses lists every known status in display order.
var Statuses = []Status{StatusOperational, StatusMaintenance, StatusCritical}

// ErrInvalidStatus is returned when a status label is not one of Statuses.
var ErrInvalidStatus = errors.New("invalid asset status")

// ErrDuplicateID is returned when a record set contains the same id twice.
var ErrDuplicateID = errors.New("duplicate asset id")

// ParseStatus converts a label into a Status. Matching ignores case and
// surrounding whitespace.
func ParseStatus(s string) (Status, error) {
	normalized := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range Statuses {
		if st == normalized {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Label returns the capitalized display form ("Operational").
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// AssetRecord is a unit of maintainable equipment.
type AssetRecord struct {
	ID              int
	Name            string
	Category        string
	Status          Status
	LastMaintenance time.Time // calendar date, UTC midnight
}

// ParseDate parses a YYYY-MM-DD maintenance date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid maintenance date %q: %w", s, err)
	}
	return d, nil
}

// MustDate is ParseDate for literals known to be valid. It panics otherwise.
func MustDate(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// LastMaintenanceText renders the maintenance date, or "" when unknown.
func (a AssetRecord) LastMaintenanceText() string {
	if a.LastMaintenance.IsZero() {
		return ""
	}
	return a.LastMaintenance.Format(DateLayout)
}

// ValidateIDs reports ErrDuplicateID if two records share an id.
func ValidateIDs(records []AssetRecord) error {
	seen := make(map[int]struct{}, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

// SampleRecords returns the built-in mock asset set.
func SampleRecords() []AssetRecord {
	return []AssetRecord{
		{ID: 1, Name: "AC Unit - Lab 3", Category: "HVAC", Status: StatusOperational, LastMaintenance: MustDate("2024-03-15")},
		{ID: 2, Name: "Server Rack 05", Category: "IT", Status: StatusCritical, LastMaintenance: MustDate("2024-02-28")},
		{ID: 3, Name: "Microscope X200", Category: "Lab", Status: StatusMaintenance, LastMaintenance: MustDate("2024-03-20")},
	}
}

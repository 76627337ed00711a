package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TrackingStatus is the lifecycle state of a book, movie or song.
// Stored as its string name so grouped dashboard counts read naturally.
type TrackingStatus string

const (
	StatusUpcoming   TrackingStatus = "Upcoming"
	StatusInProgress TrackingStatus = "InProgress"
	StatusCompleted  TrackingStatus = "Completed"
	StatusDropped    TrackingStatus = "Dropped"
)

// ParseTrackingStatus matches a status name case-insensitively.
func ParseTrackingStatus(s string) (TrackingStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upcoming":
		return StatusUpcoming, true
	case "inprogress":
		return StatusInProgress, true
	case "completed":
		return StatusCompleted, true
	case "dropped":
		return StatusDropped, true
	}
	return "", false
}

func (s *TrackingStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*s = StatusUpcoming
		return nil
	}
	parsed, ok := ParseTrackingStatus(raw)
	if !ok {
		return fmt.Errorf("unknown tracking status %q", raw)
	}
	*s = parsed
	return nil
}

// Priority orders todos from Low to Critical. Stored as its integer
// rank so ORDER BY priority and >= comparisons follow severity, while
// JSON keeps the string names.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

var priorityNames = [...]string{"Low", "Medium", "High", "Critical"}

func (p Priority) String() string {
	if p < PriorityLow || p > PriorityCritical {
		return "Medium"
	}
	return priorityNames[p]
}

// ParsePriority matches a priority name case-insensitively.
func ParsePriority(s string) (Priority, bool) {
	for i, name := range priorityNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Priority(i), true
		}
	}
	return PriorityMedium, false
}

func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*p = PriorityMedium
		return nil
	}
	parsed, ok := ParsePriority(raw)
	if !ok {
		return fmt.Errorf("unknown priority %q", raw)
	}
	*p = parsed
	return nil
}

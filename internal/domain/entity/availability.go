package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"
)

// SlotMap is a dentist's recurring weekly availability: full weekday name
// ("Monday".."Sunday") to an ordered list of "HH:MM" times. An absent key
// means no slots that day. Weekday names are the single canonical key shape;
// NormalizeSlotMap converts anything else at the creation boundary.
type SlotMap map[string][]string

var (
	ErrInvalidSlotKey  = errors.New("slot key must be a weekday name or YYYY-MM-DD date")
	ErrInvalidSlotTime = errors.New("slot time must be in HH:MM format")
	ErrEmptySlotMap    = errors.New("available slots must contain at least one day")
)

// DefaultHorizonDays is how far ahead NextAvailable scans.
const DefaultHorizonDays = 7

// Weekday display order, Monday first to match the booking calendar.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Value implements driver.Valuer for the JSONB column.
func (m SlotMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(SlotMap{})
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for the JSONB column.
func (m *SlotMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal slot map value: %v", value)
	}

	result := map[string][]string{}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*m = SlotMap(result)
	return nil
}

// SlotsFor returns the ordered slot list for a weekday key, nil when absent.
func (m SlotMap) SlotsFor(key string) []string {
	return m[key]
}

// ExpandRange projects the weekly availability onto concrete calendar days.
// Every day in [start, end] inclusive is mapped to its weekday's slots under
// an ISO date key; days whose weekday has no slots are omitted.
func (m SlotMap) ExpandRange(start, end time.Time) map[string][]string {
	expanded := map[string][]string{}
	if end.Before(start) {
		return expanded
	}

	start = truncateToDay(start)
	end = truncateToDay(end)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		slots := m[day.Weekday().String()]
		if len(slots) == 0 {
			continue
		}
		expanded[day.Format("2006-01-02")] = append([]string(nil), slots...)
	}
	return expanded
}

// NextSlot is the first bookable slot found within the scan horizon.
type NextSlot struct {
	Date  time.Time
	Label string // "Today", "Tomorrow", or e.g. "Mon Sep 2"
	Time  string
}

// NextAvailable scans from, from+1, ... up to horizonDays-1 and returns the
// first day whose weekday has a non-empty slot list, together with that
// day's first listed time. ok is false when the horizon holds no slots.
func (m SlotMap) NextAvailable(from time.Time, horizonDays int) (NextSlot, bool) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	from = truncateToDay(from)
	for i := 0; i < horizonDays; i++ {
		day := from.AddDate(0, 0, i)
		slots := m[day.Weekday().String()]
		if len(slots) == 0 {
			continue
		}

		label := ""
		switch i {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		default:
			label = day.Format("Mon Jan 2")
		}
		return NextSlot{Date: day, Label: label, Time: slots[0]}, true
	}
	return NextSlot{}, false
}

// NormalizeSlotMap validates a raw slot mapping and rewrites it to the
// canonical weekday-keyed shape. Keys may be weekday names or ISO dates;
// dates collapse onto their weekday. Times are validated as HH:MM,
// deduplicated and sorted. Unrecognized keys or times fail the whole map.
func NormalizeSlotMap(raw map[string][]string) (SlotMap, error) {
	if len(raw) == 0 {
		return nil, ErrEmptySlotMap
	}

	normalized := SlotMap{}
	for key, times := range raw {
		weekday, err := slotKeyToWeekday(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlotKey, key)
		}
		for _, t := range times {
			if _, err := time.Parse("15:04", t); err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidSlotTime, t)
			}
			normalized[weekday] = append(normalized[weekday], t)
		}
	}

	hasSlots := false
	for weekday, times := range normalized {
		sort.Strings(times)
		normalized[weekday] = dedupeSorted(times)
		if len(normalized[weekday]) > 0 {
			hasSlots = true
		}
	}
	if !hasSlots {
		return nil, ErrEmptySlotMap
	}
	return normalized, nil
}

// Weekdays lists the populated weekdays in calendar order.
func (m SlotMap) Weekdays() []string {
	days := make([]string, 0, len(m))
	for _, day := range weekdayOrder {
		if len(m[day]) > 0 {
			days = append(days, day)
		}
	}
	return days
}

func slotKeyToWeekday(key string) (string, error) {
	for _, day := range weekdayOrder {
		if key == day {
			return day, nil
		}
	}
	if date, err := time.Parse("2006-01-02", key); err == nil {
		return date.Weekday().String(), nil
	}
	return "", ErrInvalidSlotKey
}

func dedupeSorted(sorted []string) []string {
	out := sorted[:0]
	for _, s := range sorted {
		if len(out) == 0 || out[len(out)-1] != s {
			out = append(out, s)
		}
	}
	return out
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package entity

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

// 2025-09-01 is a Monday.
var monday = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func TestSlotsFor(t *testing.T) {
	m := SlotMap{
		"Monday": {"09:00", "10:00"},
		"Friday": {},
	}

	if got := m.SlotsFor("Monday"); !reflect.DeepEqual(got, []string{"09:00", "10:00"}) {
		t.Errorf("SlotsFor(Monday) = %v", got)
	}
	if got := m.SlotsFor("Friday"); len(got) != 0 {
		t.Errorf("SlotsFor(Friday) = %v, want empty", got)
	}
	if got := m.SlotsFor("Sunday"); got != nil {
		t.Errorf("SlotsFor(Sunday) = %v, want nil", got)
	}
}

func TestNormalizeSlotMap(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string][]string
		want    SlotMap
		wantErr error
	}{
		{
			name: "weekday keys pass through",
			raw:  map[string][]string{"Monday": {"09:00", "14:00"}},
			want: SlotMap{"Monday": {"09:00", "14:00"}},
		},
		{
			name: "iso date keys fold onto their weekday",
			raw:  map[string][]string{"2025-09-01": {"10:00"}, "2025-09-08": {"09:00"}},
			want: SlotMap{"Monday": {"09:00", "10:00"}},
		},
		{
			name: "times are sorted and deduplicated",
			raw:  map[string][]string{"Tuesday": {"14:00", "09:00", "14:00"}},
			want: SlotMap{"Tuesday": {"09:00", "14:00"}},
		},
		{
			name:    "empty map rejected",
			raw:     map[string][]string{},
			wantErr: ErrEmptySlotMap,
		},
		{
			name:    "only empty slot lists rejected",
			raw:     map[string][]string{"Monday": {}},
			wantErr: ErrEmptySlotMap,
		},
		{
			name:    "unrecognized key rejected",
			raw:     map[string][]string{"Mondy": {"09:00"}},
			wantErr: ErrInvalidSlotKey,
		},
		{
			name:    "malformed time rejected",
			raw:     map[string][]string{"Monday": {"9am"}},
			wantErr: ErrInvalidSlotTime,
		},
		{
			name:    "out of range time rejected",
			raw:     map[string][]string{"Monday": {"25:00"}},
			wantErr: ErrInvalidSlotTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeSlotMap(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NormalizeSlotMap() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeSlotMap() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeSlotMap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandRange(t *testing.T) {
	m := SlotMap{
		"Monday":    {"09:00"},
		"Wednesday": {"10:00", "14:00"},
	}

	// Monday through Sunday.
	got := m.ExpandRange(monday, monday.AddDate(0, 0, 6))
	want := map[string][]string{
		"2025-09-01": {"09:00"},
		"2025-09-03": {"10:00", "14:00"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandRange() = %v, want %v", got, want)
	}
}

func TestExpandRangeBounds(t *testing.T) {
	m := SlotMap{"Monday": {"09:00"}}

	// Two consecutive Mondays, inclusive on both ends.
	got := m.ExpandRange(monday, monday.AddDate(0, 0, 7))
	if len(got) != 2 {
		t.Fatalf("ExpandRange() returned %d days, want 2: %v", len(got), got)
	}
	for date := range got {
		if date < "2025-09-01" || date > "2025-09-08" {
			t.Errorf("ExpandRange() emitted date %s outside range", date)
		}
	}
}

func TestExpandRangeInvertedRange(t *testing.T) {
	m := SlotMap{"Monday": {"09:00"}}
	if got := m.ExpandRange(monday, monday.AddDate(0, 0, -1)); len(got) != 0 {
		t.Errorf("ExpandRange() with end before start = %v, want empty", got)
	}
}

func TestExpandRangeDoesNotAliasSlots(t *testing.T) {
	m := SlotMap{"Monday": {"09:00"}}
	got := m.ExpandRange(monday, monday)
	got["2025-09-01"][0] = "mutated"
	if m["Monday"][0] != "09:00" {
		t.Error("ExpandRange() result aliases the source slot list")
	}
}

func TestNextAvailable(t *testing.T) {
	tests := []struct {
		name      string
		slots     SlotMap
		from      time.Time
		wantLabel string
		wantTime  string
		wantOK    bool
	}{
		{
			name:      "slot on the from day",
			slots:     SlotMap{"Monday": {"09:00", "14:00"}},
			from:      monday,
			wantLabel: "Today",
			wantTime:  "09:00",
			wantOK:    true,
		},
		{
			name:      "slot on the following day",
			slots:     SlotMap{"Tuesday": {"11:00"}},
			from:      monday,
			wantLabel: "Tomorrow",
			wantTime:  "11:00",
			wantOK:    true,
		},
		{
			name:      "slot later in the week gets a date label",
			slots:     SlotMap{"Thursday": {"15:00"}},
			from:      monday,
			wantLabel: "Thu Sep 4",
			wantTime:  "15:00",
			wantOK:    true,
		},
		{
			name:   "no slots anywhere in the horizon",
			slots:  SlotMap{},
			from:   monday,
			wantOK: false,
		},
		{
			name:   "empty slot lists do not count",
			slots:  SlotMap{"Monday": {}, "Friday": {}},
			from:   monday,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.slots.NextAvailable(tt.from, DefaultHorizonDays)
			if ok != tt.wantOK {
				t.Fatalf("NextAvailable() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Label != tt.wantLabel {
				t.Errorf("NextAvailable() label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Time != tt.wantTime {
				t.Errorf("NextAvailable() time = %q, want %q", got.Time, tt.wantTime)
			}
		})
	}
}

func TestNextAvailableStaysInsideHorizon(t *testing.T) {
	// Every weekday populated: wherever the scan starts, the result must
	// land inside [from, from+horizon).
	m := SlotMap{}
	for _, day := range weekdayOrder {
		m[day] = []string{"09:00"}
	}

	for i := 0; i < 7; i++ {
		from := monday.AddDate(0, 0, i)
		got, ok := m.NextAvailable(from, DefaultHorizonDays)
		if !ok {
			t.Fatalf("NextAvailable(%s) not found", from.Format("2006-01-02"))
		}
		if got.Date.Before(from) || !got.Date.Before(from.AddDate(0, 0, DefaultHorizonDays)) {
			t.Errorf("NextAvailable(%s) = %s, outside horizon", from.Format("2006-01-02"), got.Date.Format("2006-01-02"))
		}
	}
}

func TestWeekdays(t *testing.T) {
	m := SlotMap{
		"Friday":  {"09:00"},
		"Monday":  {"10:00"},
		"Sunday":  {},
		"Tuesday": {"11:00"},
	}
	want := []string{"Monday", "Tuesday", "Friday"}
	if got := m.Weekdays(); !reflect.DeepEqual(got, want) {
		t.Errorf("Weekdays() = %v, want %v", got, want)
	}
}

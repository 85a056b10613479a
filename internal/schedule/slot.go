// Package schedule chooses when a modification should take effect.
package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const (
	// TimeLayout is the layout of the time labels offered by the registry.
	TimeLayout = "15:04"

	// DateLayout is the layout of the dates accepted by the registry.
	DateLayout = "02/01/2006"
)

//nolint:gochecknoglobals
var slotRegex = regexp.MustCompile(`^(?:[01][0-9]|2[0-3]):[0-5][0-9]$`)

// ErrNoSlots means the registry did not offer any time at all.
var ErrNoSlots = errors.New("no modification times available")

// Slot is the time at which a modification takes effect.
type Slot struct {
	Time    string    // HH:MM, as offered by the registry
	Date    string    // DD/MM/YYYY
	IsToday bool      // whether Date is the same day as the clock that picked the slot
	Start   time.Time // Time and Date as a point in time
	Offset  int       // days from the clock that picked the slot
}

// Day describes the date relative to when the slot was picked.
func (s Slot) Day() string {
	switch s.Offset {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", s.Offset)
	}
}

// String gives "HH:MM DD/MM/YYYY today|tomorrow".
func (s Slot) String() string {
	return fmt.Sprintf("%s %s %s", s.Time, s.Date, s.Day())
}

// CheckSlots makes sure every label is a valid HH:MM time and the labels are ascending.
func CheckSlots(slots []string) error {
	if len(slots) == 0 {
		return ErrNoSlots
	}
	for i, s := range slots {
		if !slotRegex.MatchString(s) {
			return fmt.Errorf("bad modification time %q", s)
		}
		if i > 0 && slots[i-1] >= s {
			return fmt.Errorf("modification times are not in ascending order: %q then %q", slots[i-1], s)
		}
	}
	return nil
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func at(day time.Time, label string) time.Time {
	hm, _ := time.Parse(TimeLayout, label)
	return time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, day.Location())
}

// PickSlot picks the first slot strictly later than now+lead on the day now+lead falls on,
// or the first slot of the following day if there is none.
//
// String comparison of zero-padded HH:MM labels is the same as comparison of times.
func PickSlot(now time.Time, lead time.Duration, slots []string) (Slot, error) {
	if err := CheckSlots(slots); err != nil {
		return Slot{}, err
	}

	today := midnight(now)
	earliest := now.Add(lead)
	day := midnight(earliest)
	label := earliest.Format(TimeLayout)

	chosen := ""
	for _, s := range slots {
		if s > label {
			chosen = s
			break
		}
	}
	if chosen == "" {
		chosen = slots[0]
		day = midnight(day.AddDate(0, 0, 1))
	}

	offset := 0
	for d := today; d.Before(day); d = midnight(d.AddDate(0, 0, 1)) {
		offset++
	}

	return Slot{
		Time:    chosen,
		Date:    day.Format(DateLayout),
		IsToday: offset == 0,
		Start:   at(day, chosen),
		Offset:  offset,
	}, nil
}

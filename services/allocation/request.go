package allocation

import (
	"errors"
	"strings"
	"time"

	"templeseva/models"
)

const (
	dateLayout = "2006-01-02"
	slotLayout = "15:04"
)

// slot is the parsed form of a request's date and time. timeSlot is the
// canonical "HH:MM" used to match stored bookings.
type slot struct {
	date     string
	weekday  string
	hour     int
	timeSlot string
}

// parseRequest validates the required fields and parses date and time.
func parseRequest(req models.AllocationRequest) (slot, error) {
	var missing []string
	if req.SelectedDate == "" {
		missing = append(missing, "selectedDate")
	}
	if req.ServiceMode == "" {
		missing = append(missing, "serviceMode")
	}
	if req.TimeSlot == "" {
		missing = append(missing, "timeSlot")
	}
	if len(missing) > 0 {
		return slot{}, newValidationError("Missing required fields: %s", strings.Join(missing, ", "))
	}
	if !req.ServiceMode.Valid() {
		return slot{}, newValidationError("Invalid serviceMode %q: expected virtual, in_person or temple", req.ServiceMode)
	}

	day, err := time.Parse(dateLayout, req.SelectedDate)
	if err != nil {
		return slot{}, newValidationError("Invalid selectedDate %q: expected YYYY-MM-DD", req.SelectedDate)
	}
	hour, err := parseHour(req.TimeSlot)
	if err != nil {
		return slot{}, newValidationError("Invalid timeSlot %q: expected HH:MM", req.TimeSlot)
	}

	return slot{
		date:     day.Format(dateLayout),
		weekday:  strings.ToLower(day.Weekday().String()),
		hour:     hour,
		timeSlot: req.TimeSlot,
	}, nil
}

var errSlotFormat = errors.New("time slot must be zero-padded HH:MM")

// parseHour returns the hour of an "HH:MM" slot. Only the zero-padded
// 24h form is accepted so the slot matches stored bookings byte for byte.
// Minutes are validated but dropped: schedule matching works at hour
// granularity.
func parseHour(timeSlot string) (int, error) {
	if len(timeSlot) != len(slotLayout) {
		return 0, errSlotFormat
	}
	t, err := time.Parse(slotLayout, timeSlot)
	if err != nil {
		return 0, err
	}
	if t.Format(slotLayout) != timeSlot {
		return 0, errSlotFormat
	}
	return t.Hour(), nil
}

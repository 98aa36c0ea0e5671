package domain

import (
	"strings"
	"time"

	"venuehub/pkg/slot"
)

// Validation codes.
const (
	CodeRequired    = "required"
	CodeInvalidDate = "invalid_date"
	CodeInvalidTime = "invalid_time"
	CodeInPast      = "in_past"
)

// FieldError is a single rejected form field.
type FieldError struct {
	Field string
	Code  string
}

// ValidationErrors lists every rejected field, in form order.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Field + ": " + e.Code
	}
	return "invalid form (" + strings.Join(parts, ", ") + ")"
}

// For returns the code recorded for field, or "".
func (v ValidationErrors) For(field string) string {
	for _, e := range v {
		if e.Field == field {
			return e.Code
		}
	}
	return ""
}

// BookingForm holds the raw submitted booking fields.
type BookingForm struct {
	Date string `form:"date"`
	Time string `form:"time"`
}

// BookingRequest is a validated booking form.
type BookingRequest struct {
	Date time.Time
	Time slot.Clock
}

// ParseBookingForm validates f. It returns either a BookingRequest or a
// ValidationErrors value; slots before now (in loc) are rejected.
func ParseBookingForm(f BookingForm, now time.Time, loc *time.Location) (BookingRequest, error) {
	var errs ValidationErrors
	var req BookingRequest

	dateOK, timeOK := false, false
	if strings.TrimSpace(f.Date) == "" {
		errs = append(errs, FieldError{Field: "date", Code: CodeRequired})
	} else if d, err := slot.ParseDate(f.Date); err != nil {
		errs = append(errs, FieldError{Field: "date", Code: CodeInvalidDate})
	} else {
		req.Date = d
		dateOK = true
	}

	if strings.TrimSpace(f.Time) == "" {
		errs = append(errs, FieldError{Field: "time", Code: CodeRequired})
	} else if c, err := slot.ParseClock(f.Time); err != nil {
		errs = append(errs, FieldError{Field: "time", Code: CodeInvalidTime})
	} else {
		req.Time = c
		timeOK = true
	}

	if dateOK && timeOK && slot.At(req.Date, req.Time, loc).Before(now) {
		errs = append(errs, FieldError{Field: "date", Code: CodeInPast})
	}

	if len(errs) > 0 {
		return BookingRequest{}, errs
	}
	return req, nil
}

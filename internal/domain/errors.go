package domain

import "errors"

// Domain errors.
var (
	ErrVenueNotFound      = errors.New("venue not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrSlotTaken          = errors.New("venue already booked for this date and time")
	ErrGroupNotFound      = errors.New("chat group not found")
	ErrNotGroupOwner      = errors.New("only the group owner can do this")
	ErrInvalidGroup       = errors.New("group name is required and must be at most 100 characters")
	ErrInvalidMessage     = errors.New("message is required and must be at most 2000 characters")
	ErrStadiumFileMissing = errors.New("stadium dataset not found")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrVenueNotFound, "venue_not_found"},
	{ErrBookingNotFound, "booking_not_found"},
	{ErrSlotTaken, "slot_taken"},
	{ErrGroupNotFound, "group_not_found"},
	{ErrNotGroupOwner, "not_group_owner"},
	{ErrInvalidGroup, "invalid_group"},
	{ErrInvalidMessage, "invalid_message"},
	{ErrStadiumFileMissing, "stadium_file_missing"},
}

// Code returns the stable code of a domain error, "validation" for
// ValidationErrors, or "" when err is not a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return "validation"
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVenueNotFound) ||
		errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrGroupNotFound)
}

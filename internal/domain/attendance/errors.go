package attendance

import "errors"

var (
	ErrTimeEntryNotFound = errors.New("time entry not found")
	ErrAlreadyClockedIn  = errors.New("employee already has an open time entry")
	ErrNotClockedIn      = errors.New("employee has no open time entry")
	ErrEntryClosed       = errors.New("time entry already closed")
)

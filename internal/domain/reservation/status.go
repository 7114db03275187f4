package reservation

// Status is the lifecycle state of a reservation.
//
// booked ──▶ checked_in ──▶ returned
//    │
//    ├─────▶ cancelled
//    └─────▶ no_show_cancelled   (sweeper only)
//
// returned, cancelled and no_show_cancelled are terminal. no_show is a
// legacy status that older records may still carry; no transition
// produces it.
type Status string

const (
	StatusBooked          Status = "booked"
	StatusCheckedIn       Status = "checked_in"
	StatusReturned        Status = "returned"
	StatusCancelled       Status = "cancelled"
	StatusNoShow          Status = "no_show"
	StatusNoShowCancelled Status = "no_show_cancelled"
)

var validTransitions = map[Status][]Status{
	StatusBooked:    {StatusCheckedIn, StatusCancelled, StatusNoShowCancelled},
	StatusCheckedIn: {StatusReturned},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCheckedIn, StatusReturned,
		StatusCancelled, StatusNoShow, StatusNoShowCancelled:
		return true
	}
	return false
}

// IsOccupying reports whether the status counts toward conflict detection.
func (s Status) IsOccupying() bool {
	return s == StatusBooked || s == StatusCheckedIn
}

func (s Status) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range validTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// OccupyingStatuses are the states whose time windows must never overlap
// on the same resource.
func OccupyingStatuses() []Status {
	return []Status{StatusBooked, StatusCheckedIn}
}

// ListableStatuses are the states surfaced on the calendar view.
func ListableStatuses() []Status {
	return []Status{StatusBooked, StatusCheckedIn, StatusReturned, StatusNoShow, StatusNoShowCancelled}
}

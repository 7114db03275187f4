package reservation

// Window is the minimal projection of an existing reservation used by
// conflict detection.
type Window struct {
	Slot   TimeSlot
	Status Status
}

// HasConflict reports whether the candidate slot overlaps any existing
// window held in an occupying status. Windows in terminal states never
// conflict.
func HasConflict(candidate TimeSlot, existing []Window) bool {
	for _, w := range existing {
		if !w.Status.IsOccupying() {
			continue
		}
		if candidate.Overlaps(w.Slot) {
			return true
		}
	}
	return false
}

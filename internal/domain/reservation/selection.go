package reservation

// FirstSlot returns the first slot in the order the API returned them. The
// dining-time preference deliberately does not filter or reorder here: the
// bot books the first available slot even when a later one matches the
// preferred time exactly.
func FirstSlot(available []Slot) (Slot, bool) {
	if len(available) == 0 {
		return Slot{}, false
	}
	return available[0], true
}

// FirstVenue returns the first search result. Tie-break is API order.
func FirstVenue(matches []Venue) (Venue, bool) {
	if len(matches) == 0 {
		return Venue{}, false
	}
	return matches[0], true
}

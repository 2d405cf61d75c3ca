package contact

import "time"

// DemoNote labels responses built from the demonstration dataset.
const DemoNote = "Demo data - database not available"

// DemoContacts returns the fixed, non-authoritative dataset served to the
// admin inbox while the durable store is unreachable. Ids are synthetic and
// never resolve against the store; timestamps are relative to now.
func DemoContacts(now time.Time) []*Contact {
	return []*Contact{
		{
			ID:        "demo-1",
			Name:      "John Doe",
			Email:     "john@example.com",
			Message:   "Hi, I need help with a web development project.",
			Status:    StatusNew,
			CreatedAt: now,
		},
		{
			ID:        "demo-2",
			Name:      "Jane Smith",
			Email:     "jane@example.com",
			Message:   "Interested in forex training. Please contact me.",
			Status:    StatusRead,
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}
}

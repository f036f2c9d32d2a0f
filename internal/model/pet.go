package model

// Pet holds a pet's identity, needs and advisory preferences.
// Preferences are advisory inputs to planning, never hard constraints.
type Pet struct {
	Name        string
	Species     Species
	Needs       []string          // e.g. "exercise", "feeding", "socialization"
	Preferences map[string]string // Free-form key/value pairs
}

// PetOwner holds the owner's daily availability and preferences.
// Availability is a hard constraint: no task may be placed outside it.
// The owner optionally references one owned pet; the pet holds no back-reference.
type PetOwner struct {
	Name         string
	Availability TimeWindow
	Preferences  map[string]string
	Pet          *Pet
}

// DefaultAvailability is the fallback owner window (08:00 to 22:00) used when
// no availability is supplied.
var DefaultAvailability = TimeWindow{Start: 480, End: 1320}

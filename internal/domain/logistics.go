package domain

import "strings"

// LogisticKind groups logistics links the way the trip card does.
type LogisticKind string

const (
	KindTransportation LogisticKind = "Transportation"
	KindAccommodation  LogisticKind = "Accommodation"
)

// NoPlanMessage is shown when a logistics link has not been filled in yet.
const NoPlanMessage = "No plan yet!"

// Logistic is a single travel or lodging reference attached to a trip.
type Logistic struct {
	Kind  LogisticKind `json:"kind"`
	Label string       `json:"label"`
	URL   string       `json:"url"`
}

// Planned reports whether the link points anywhere.
func (l Logistic) Planned() bool {
	return strings.TrimSpace(l.URL) != ""
}

// Logistics returns the links displayed for t, in display order.
// The primary outbound, return and lodging references are always listed so the
// UI can show NoPlanMessage for them; the optional ones only when set.
func (t Trip) Logistics() []Logistic {
	out := []Logistic{
		{Kind: KindTransportation, Label: "Travel To", URL: t.TravelTo},
		{Kind: KindTransportation, Label: "Travel Back", URL: t.TravelBack},
		{Kind: KindAccommodation, Label: "Accommodation", URL: t.Accommodation1},
	}
	optional := []Logistic{
		{Kind: KindAccommodation, Label: "Accommodation 2", URL: t.Accommodation2},
		{Kind: KindTransportation, Label: "Extra Travel", URL: t.ExtraTravel},
		{Kind: KindAccommodation, Label: "Extra Accommodation", URL: t.ExtraAccommodation},
	}
	for _, l := range optional {
		if l.Planned() {
			out = append(out, l)
		}
	}
	return out
}

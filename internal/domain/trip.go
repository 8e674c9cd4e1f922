// Package domain contains the core data types for the Travel Tracker backend.
// This package has zero external dependencies and is imported by every other
// internal package (store, repo, service, calendar, chat, handler).
package domain

import (
	"fmt"
	"strings"
)

// Status is the planning stage of a trip. It is a closed enumeration.
type Status string

const (
	StatusIdeated   Status = "Ideated"
	StatusPlanned   Status = "Planned"
	StatusConfirmed Status = "Confirmed"
)

// Statuses lists every valid Status in planning order.
var Statuses = []Status{StatusIdeated, StatusPlanned, StatusConfirmed}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseStatus converts raw user input into a Status.
// Matching is exact after trimming; the stored spelling is always capitalised.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", fmt.Errorf("%w: status must be one of Ideated, Planned, Confirmed", ErrValidation)
	}
	return s, nil
}

// Trip represents a single travel event recorded by the user.
//
// StartDate and EndDate are ISO "2006-01-02" strings, or empty when the user has
// not picked a date yet. No ordering between them is enforced here.
//
// The logistics fields are free text, typically booking URLs. Their JSON names
// match the on-device app type (including the "Accomodation" spelling).
type Trip struct {
	ID                 int64  `json:"id"`
	Title              string `json:"title"`
	StartDate          string `json:"startdate"`
	EndDate            string `json:"enddate"`
	Status             Status `json:"status"`
	People             string `json:"people"`
	TravelTo           string `json:"TravelTo"`
	TravelBack         string `json:"TravelBack"`
	Accommodation1     string `json:"Accomodation1"`
	Accommodation2     string `json:"Accomodation2"`
	ExtraTravel        string `json:"ExtraTravel"`
	ExtraAccommodation string `json:"ExtraAccomodation"`
	Notes              string `json:"notes"`
}

// HasDates reports whether both start and end dates are set.
func (t Trip) HasDates() bool {
	return t.StartDate != "" && t.EndDate != ""
}

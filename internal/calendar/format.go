package calendar

import "fmt"

// NoDateSet is rendered when a trip has no usable dates.
const NoDateSet = "No date set"

// FormatDateRange renders a trip's dates the way the trip list shows them:
//
//	June 10th - 12th, 2025
//	June 30th - July 2nd, 2025
//	December 30th, 2025 - January 2nd, 2026
func FormatDateRange(start, end string) string {
	s, err := ParseDay(start)
	if err != nil {
		return NoDateSet
	}
	e, err := ParseDay(end)
	if err != nil {
		return NoDateSet
	}

	switch {
	case s.Year() != e.Year():
		return fmt.Sprintf("%s %s, %d - %s %s, %d",
			s.Month(), ordinal(s.Day()), s.Year(), e.Month(), ordinal(e.Day()), e.Year())
	case s.Month() != e.Month():
		return fmt.Sprintf("%s %s - %s %s, %d",
			s.Month(), ordinal(s.Day()), e.Month(), ordinal(e.Day()), s.Year())
	default:
		return fmt.Sprintf("%s %s - %s, %d", s.Month(), ordinal(s.Day()), ordinal(e.Day()), s.Year())
	}
}

// FormatLongDay renders a single ISO day as "June 10, 2025", or NoDateSet.
func FormatLongDay(day string) string {
	d, err := ParseDay(day)
	if err != nil {
		return NoDateSet
	}
	return d.Format("January 2, 2006")
}

func ordinal(day int) string {
	return fmt.Sprintf("%d%s", day, ordinalSuffix(day))
}

func ordinalSuffix(day int) string {
	if day > 3 && day < 21 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

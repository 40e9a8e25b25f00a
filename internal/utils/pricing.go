package utils

import "time"

// TotalPrice computes the full rent price for an hourly rate. Used both
// when a rent record is created and for the client's live price preview.
// Non-positive hours price to zero.
func TotalPrice(pricePerHour, hours int) int {
	if hours <= 0 {
		return 0
	}
	return pricePerHour * hours
}

// ReturnDeadline is the latest return time for a rent starting at start.
func ReturnDeadline(start time.Time, hours int) time.Time {
	return start.Add(time.Duration(hours) * time.Hour)
}

package domain

import "time"

// Fine computes the overdue penalty of a booking at the given moment.
//
// Only approved bookings accrue fines. A booking is overdue strictly
// after its end time (now == end is not overdue). The amount is
// (daysOverdue + 1) * FinePerDayOverdue where daysOverdue is the number
// of whole 24h periods elapsed since the end time, so the fine jumps to
// the next step exactly at each 24h boundary past the end.
func Fine(now time.Time, endTime time.Time, status BookingStatus) int {
	if status != StatusApproved {
		return 0
	}
	if !now.After(endTime) {
		return 0
	}
	daysOverdue := int(now.Sub(endTime) / (24 * time.Hour))
	return (daysOverdue + 1) * FinePerDayOverdue
}

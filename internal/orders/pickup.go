package orders

import (
	"fmt"
	"time"
)

// MsgPickupArrived is shown once the pickup window has opened.
const MsgPickupArrived = "Waktu pengambilan telah tiba!"

// PickupTimeReached reports whether the pickup window has opened. An
// order without a pickup time is never considered reached. Advisory only:
// the ledger does not consult it when changing status.
func PickupTimeReached(pickupTime *time.Time) bool {
	return pickupTimeReachedAt(pickupTime, time.Now())
}

func pickupTimeReachedAt(pickupTime *time.Time, now time.Time) bool {
	if pickupTime == nil {
		return false
	}
	return !now.Before(*pickupTime)
}

// TimeUntilPickup formats the remaining wait as the coarsest non-zero
// bucket: "N hari M jam lagi", "N jam M menit lagi", "N menit lagi".
// Empty string when no pickup time is set.
func TimeUntilPickup(pickupTime *time.Time) string {
	return timeUntilPickupAt(pickupTime, time.Now())
}

func timeUntilPickupAt(pickupTime *time.Time, now time.Time) string {
	if pickupTime == nil {
		return ""
	}

	diff := pickupTime.Sub(now)
	if diff <= 0 {
		return MsgPickupArrived
	}

	days := int(diff / (24 * time.Hour))
	hours := int(diff % (24 * time.Hour) / time.Hour)
	mins := int(diff % time.Hour / time.Minute)

	if days > 0 {
		return fmt.Sprintf("%d hari %d jam lagi", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%d jam %d menit lagi", hours, mins)
	}
	return fmt.Sprintf("%d menit lagi", mins)
}

package contracts

import "time"

// Scheduler runs delayed follow-up actions for the payment flow. Cancel
// reports whether the action was still pending; Stop cancels everything
// and prevents any further firing.
type Scheduler interface {
	Schedule(id string, delay time.Duration, fn func())
	Cancel(id string) bool
	Stop()
}

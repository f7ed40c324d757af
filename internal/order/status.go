package order

import "fmt"

// Status is the flat order state set by the admin panel. Transitions are
// not restricted: any status may be set at any time, in either direction.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// completedStepCount maps each status to how many leading tracking steps it
// implies are done. Cancellation keeps only the initial "order received"
// step; steps already marked completed are never un-marked.
var completedStepCount = map[Status]int{
	StatusPending:    1,
	StatusConfirmed:  2,
	StatusProcessing: 3,
	StatusShipped:    4,
	StatusDelivered:  5,
	StatusCancelled:  1,
}

// ParseStatus validates an admin-supplied status string.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := completedStepCount[st]; !ok {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return st, nil
}

package order

import "time"

// stepLabels are the five fixed fulfillment stages, in order.
var stepLabels = [5]string{
	"অর্ডার প্রাপ্ত",
	"পেমেন্ট যাচাই",
	"প্রোডাকশন শুরু",
	"শিপমেন্ট প্রস্তুত",
	"ডেলিভারি সম্পন্ন",
}

// stepDate renders the day/month/year stamp shown on the tracking timeline.
func stepDate(t time.Time) string {
	return t.Format("2/1/2006")
}

// NewTrackingSteps builds the fresh checklist attached to every new order:
// the first step completed and dated, the remaining four pending.
func NewTrackingSteps(now time.Time) []TrackingStep {
	steps := make([]TrackingStep, len(stepLabels))
	for i, label := range stepLabels {
		steps[i] = TrackingStep{Step: label}
	}
	steps[0].Completed = true
	steps[0].Date = stepDate(now)
	return steps
}

// ApplyStatus returns a copy of steps with the prefix implied by st marked
// completed and dated. Steps already completed keep their original date and
// are never reverted, so moving backwards (including to cancelled) leaves
// the checklist as it was.
func ApplyStatus(steps []TrackingStep, st Status, now time.Time) []TrackingStep {
	out := make([]TrackingStep, len(steps))
	copy(out, steps)
	for i := 0; i < completedStepCount[st] && i < len(out); i++ {
		if out[i].Completed {
			continue
		}
		out[i].Completed = true
		out[i].Date = stepDate(now)
	}
	return out
}

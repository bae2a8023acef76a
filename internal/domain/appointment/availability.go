package appointment

import (
	"sort"
	"time"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Window is a half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) overlaps(o Window) bool {
	return w.Start.Before(o.End) && w.End.After(o.Start)
}

// FreeSlots walks every working window in steps of length step and keeps
// the slots that fit inside the window without touching a booked interval.
func FreeSlots(windows, booked []Window, step time.Duration) []TimeSlot {
	slots := []TimeSlot{}
	if step <= 0 {
		return slots
	}

	sort.Slice(windows, func(i, j int) bool { return windows[i].Start.Before(windows[j].Start) })

	for _, w := range windows {
		for cur := w.Start; !cur.Add(step).After(w.End); cur = cur.Add(step) {
			slot := Window{Start: cur, End: cur.Add(step)}

			conflict := false
			for _, b := range booked {
				if slot.overlaps(b) {
					conflict = true
					break
				}
			}

			if !conflict {
				slots = append(slots, TimeSlot{
					Start: slot.Start.Format("15:04"),
					End:   slot.End.Format("15:04"),
				})
			}
		}
	}

	return slots
}

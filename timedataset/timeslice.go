package timedataset

import (
	"time"
)

type TimeSlice []time.Time

func (t TimeSlice) StartTime() time.Time {
	var startTime time.Time
	if len(t) < 1 {
		return startTime
	}
	return t[0]
}

func (t TimeSlice) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}
	return t[len(t)-1]
}

// Labels formats each time point with the provided layout, e.g. for chart axes
func (t TimeSlice) Labels(layout string) []string {
	labels := make([]string, 0, len(t))
	for _, tPnt := range t {
		labels = append(labels, tPnt.Format(layout))
	}
	return labels
}

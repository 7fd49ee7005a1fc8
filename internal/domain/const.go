package domain

import "time"

const (
	// ViewWindow is the rolling dedup window anchored at a viewer's first
	// event for a content item. Further events from the same viewer inside
	// the window merge into the anchor row instead of creating a new one.
	ViewWindow = 24 * time.Hour

	// ReadProgressThreshold is the minimum progress percentage for a
	// progress report to count as a read
	ReadProgressThreshold = 60

	// ReadTimeThresholdSeconds is the minimum time spent for a progress
	// report to count as a read
	ReadTimeThresholdSeconds = 30
)

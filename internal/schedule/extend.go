package schedule

import (
	"fmt"
	"strings"
	"time"
)

// extendedMarker tags a booking title that has already been extended.
const extendedMarker = "[EXTENDED]"

// NewEnd computes the end time after extending by the given minutes.
func NewEnd(currentEnd time.Time, minutes int) time.Time {
	return currentEnd.Add(time.Duration(minutes) * time.Minute)
}

// ExtendedTitle appends the extended marker to a title unless it is already
// present. Applying it twice yields the same result as applying it once.
func ExtendedTitle(title string) string {
	if strings.Contains(title, extendedMarker) {
		return title
	}
	return title + " " + extendedMarker
}

// ExtensionNote renders the timestamped audit line prepended to the event
// description on each extension.
func ExtensionNote(now time.Time, minutes int) string {
	return fmt.Sprintf("%s — Client extended their session by %d minutes.", now.Format("3:04:05 PM"), minutes)
}

// PrependNote puts the audit line in front of the existing description,
// newline-separated. Prior content is never discarded.
func PrependNote(note, description string) string {
	if description == "" {
		return note
	}
	return note + "\n" + description
}

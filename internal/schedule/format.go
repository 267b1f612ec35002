package schedule

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// studioTagPattern matches the studio suffix some bookings carry in their
// title; it is stripped before the title appears on receipts.
var studioTagPattern = regexp.MustCompile(`(?i)\s*\(White Space Studio\)`)

// FormatRemaining renders a countdown as H:MM:SS when at least an hour
// remains, MM:SS otherwise, and an empty string once time is up.
func FormatRemaining(remaining time.Duration) string {
	if remaining <= 0 {
		return ""
	}
	total := int(remaining / time.Second)
	hrs := total / 3600
	mins := (total % 3600) / 60
	secs := total % 60
	if hrs > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hrs, mins, secs)
	}
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// FormatClock renders a wall-clock time as h:MM AM/PM.
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// TimeRangeLabel renders the session window shown on the display, e.g.
// "10:00 AM - 11:00 AM".
func TimeRangeLabel(start, end time.Time) string {
	return FormatClock(start) + " - " + FormatClock(end)
}

// OriginalRangeLabel renders the pre-extension appointment for the audit row,
// e.g. "June 3, 2026 10:00 AM – 11:00 AM".
func OriginalRangeLabel(start, end time.Time) string {
	return fmt.Sprintf("%s %s – %s", start.Format("January 2, 2006"), FormatClock(start), FormatClock(end))
}

// NewRangeLabel renders the post-extension window for the audit row.
func NewRangeLabel(start, newEnd time.Time) string {
	return fmt.Sprintf("%s – %s", FormatClock(start), FormatClock(newEnd))
}

// DurationLabel renders an extension length for the audit row.
func DurationLabel(minutes int) string {
	if minutes == 60 {
		return "1 hour"
	}
	return fmt.Sprintf("%d minutes", minutes)
}

// CleanTitle strips the studio tag from a booking title.
func CleanTitle(title string) string {
	return strings.TrimSpace(studioTagPattern.ReplaceAllString(title, ""))
}

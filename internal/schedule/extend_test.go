package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtendedTitle_Idempotent(t *testing.T) {
	once := ExtendedTitle("Jane: session")
	assert.Equal(t, "Jane: session [EXTENDED]", once)

	// Extending again must never duplicate the marker.
	assert.Equal(t, once, ExtendedTitle(once))
	assert.Equal(t, once, ExtendedTitle(ExtendedTitle(once)))
}

func TestNewEnd(t *testing.T) {
	end := time.Date(2026, 6, 3, 11, 0, 0, 0, time.UTC)
	assert.True(t, NewEnd(end, 30).Equal(end.Add(30*time.Minute)))
}

func TestExtensionNote(t *testing.T) {
	now := time.Date(2026, 6, 3, 14, 5, 30, 0, time.UTC)
	assert.Equal(t, "2:05:30 PM — Client extended their session by 30 minutes.", ExtensionNote(now, 30))
}

func TestPrependNote(t *testing.T) {
	note := "2:05:30 PM — Client extended their session by 30 minutes."

	t.Run("empty description", func(t *testing.T) {
		assert.Equal(t, note, PrependNote(note, ""))
	})

	t.Run("prior content is kept below the note", func(t *testing.T) {
		assert.Equal(t, note+"\nbooked online", PrependNote(note, "booked online"))
	})
}

package schedule

import (
	"testing"

	"studiosessions/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertThreshold(t *testing.T) {
	assert.Equal(t, 15, AlertThreshold(false))
	assert.Equal(t, 30, AlertThreshold(true))
}

func TestOffersFor(t *testing.T) {
	tests := []struct {
		name        string
		available   int
		isEventType bool
		wantMinutes []int
	}{
		{name: "plenty of time, standard", available: 240, wantMinutes: []int{15, 30, 60}},
		{name: "only the shorter options fit", available: 45, wantMinutes: []int{15, 30}},
		{name: "exact fit is offered", available: 30, wantMinutes: []int{15, 30}},
		{name: "too little free time offers nothing", available: 10, wantMinutes: nil},
		{name: "event catalog", available: 240, isEventType: true, wantMinutes: []int{30, 60}},
		{name: "event catalog with a tight gap", available: 30, isEventType: true, wantMinutes: []int{30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offers := OffersFor(tt.available, tt.isEventType)
			var minutes []int
			for _, o := range offers {
				minutes = append(minutes, o.Minutes)
			}
			assert.Equal(t, tt.wantMinutes, minutes)
		})
	}
}

func TestCatalogPricing(t *testing.T) {
	standard := Catalog(false)
	require.Len(t, standard, 3)
	assert.Equal(t, domain.ExtensionOption{Minutes: 30, Price: "$43"}, standard[1])

	event := Catalog(true)
	require.Len(t, event, 2)
	assert.Equal(t, domain.ExtensionOption{Minutes: 30, Price: "$53.10"}, event[0])
	assert.Equal(t, domain.ExtensionOption{Minutes: 60, Price: "$106.20"}, event[1])
}

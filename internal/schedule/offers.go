package schedule

import "studiosessions/internal/domain"

// Alert thresholds in minutes remaining, by booking class.
const (
	standardAlertMinutes = 15
	eventAlertMinutes    = 30
)

// AlertThreshold returns the remaining-minutes value at which the one-time
// warning fires for the given booking class.
func AlertThreshold(isEventType bool) int {
	if isEventType {
		return eventAlertMinutes
	}
	return standardAlertMinutes
}

// Catalog returns the pricing catalog for the given booking class.
func Catalog(isEventType bool) []domain.ExtensionOption {
	if isEventType {
		return domain.EventExtensionOptions
	}
	return domain.StandardExtensionOptions
}

// OffersFor filters the catalog down to the options that fit in the available
// free time. Options that do not fit are omitted, never shown disabled.
func OffersFor(availableMinutes int, isEventType bool) []domain.ExtensionOption {
	var offers []domain.ExtensionOption
	for _, opt := range Catalog(isEventType) {
		if opt.Minutes <= availableMinutes {
			offers = append(offers, opt)
		}
	}
	return offers
}

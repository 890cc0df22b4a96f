package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AvailabilityMode defines how booking creation checks that a car can be rented
type AvailabilityMode string

const (
	// AvailabilityEffective requires effective stock for the requested range to be positive
	AvailabilityEffective AvailabilityMode = "effective"

	// AvailabilityLegacy only requires raw global stock to be positive
	AvailabilityLegacy AvailabilityMode = "legacy"
)

// IsValid returns true for a known availability mode
func (m AvailabilityMode) IsValid() bool {
	return m == AvailabilityEffective || m == AvailabilityLegacy
}

// Package units provides shared constants and validation for distance units
package units

// Unit constants
const (
	Metres     = "m"
	Kilometres = "km"
	Feet       = "ft"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{Metres, Kilometres, Feet}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "m, km, ft"
}

// ConvertDistance converts a ground distance from metres to the target units.
// Survey geometry is always computed in metres; conversion happens at the
// API boundary only.
func ConvertDistance(metres float64, targetUnits string) float64 {
	switch targetUnits {
	case Kilometres:
		return metres / 1000
	case Feet:
		return metres * 3.28084 // m to international feet
	case Metres:
		return metres
	default:
		return metres // default to metres if unknown unit
	}
}

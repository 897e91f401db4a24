package validate

import "regexp"

var referencePattern = regexp.MustCompile(`^BK-\d{8}-[A-Z0-9]{6}$`)

// IsBookingReference reports whether s matches the customer-facing
// booking reference format BK-YYYYMMDD-XXXXXX.
func IsBookingReference(s string) bool {
	return referencePattern.MatchString(s)
}

package identity

import "strings"

// DefaultCountryCode is folded into local form during phone
// normalization so that "+255 712 345 678" and "0712345678"
// compare equal.
const DefaultCountryCode = "255"

// NormalizePhone reduces a phone number to bare digits and folds the
// default country code into local form. The result is stable under
// repeated normalization.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	digits := b.String()

	// +255XXXXXXXXX and 0XXXXXXXXX are the same subscriber. Only fold
	// when enough digits follow the prefix to be a real number.
	if strings.HasPrefix(digits, DefaultCountryCode) && len(digits) > len(DefaultCountryCode)+3 {
		digits = "0" + digits[len(DefaultCountryCode):]
	}

	return digits
}

// NormalizeName lowercases and collapses internal whitespace.
func NormalizeName(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}

// NormalizePlate uppercases and removes all whitespace, so
// "abc 123" and "ABC123" resolve to the same vehicle.
func NormalizePlate(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}

// NormalizeTaxNumber uppercases and strips separators.
func NormalizeTaxNumber(raw string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "", "/", "", ".", "").Replace(raw)
	return strings.ToUpper(strings.TrimSpace(cleaned))
}

// TemporaryCustomerName is the display name given to placeholder
// customers created from a plate-only order start.
func TemporaryCustomerName(plate string) string {
	return "Plate " + NormalizePlate(plate)
}

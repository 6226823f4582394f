package usecase

import (
	"fmt"
	"strings"
	"unicode"

	domainErrors "github.com/bestcobb/orderapi/internal/domain/errors"
)

const (
	trunkPrefix       = "0"
	localNumberLength = 10
)

// NormalizePhone converts a locally-formatted phone number into international
// format by replacing the trunk prefix with the given country calling code,
// e.g. "0241234567" with code "233" becomes "+233241234567".
//
// Unlike the order form itself, this rejects numbers that do not carry the
// trunk prefix or the expected local length instead of producing a malformed
// international number.
func NormalizePhone(local, countryCode string) (string, error) {
	trimmed := strings.TrimSpace(local)
	if len(trimmed) != localNumberLength {
		return "", fmt.Errorf("%w: expected %d digits, got %d", domainErrors.ErrInvalidPhoneNumber, localNumberLength, len(trimmed))
	}
	if !strings.HasPrefix(trimmed, trunkPrefix) {
		return "", fmt.Errorf("%w: missing trunk prefix %q", domainErrors.ErrInvalidPhoneNumber, trunkPrefix)
	}
	for _, r := range trimmed {
		if !unicode.IsDigit(r) {
			return "", fmt.Errorf("%w: non-digit character %q", domainErrors.ErrInvalidPhoneNumber, r)
		}
	}
	return "+" + countryCode + trimmed[len(trunkPrefix):], nil
}

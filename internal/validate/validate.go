package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	rePhone = regexp.MustCompile(`^[0-9+][0-9 -]{6,19}$`)
	reDate  = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
)

const (
	MinWeightKg = 0.5
	MaxWeightKg = 100

	MinAddressLen = 10
	MaxAddressLen = 500
	MaxNotesLen   = 1000
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID validates a simple resource identifier (service/booking ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return "", false
	}
	return s, true
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, rePhone.MatchString(s)
}

// Weight parses a free-text kilogram value from the booking form.
// Returns false for anything non-numeric or outside the global window.
func Weight(s string) (float64, bool) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return w, w >= MinWeightKg && w <= MaxWeightKg
}

// Address trims and enforces the pickup address length window. Lengths are
// counted in characters, not bytes, so non-ASCII addresses measure the same
// as what the customer typed.
func Address(s string) (string, bool) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	return s, n >= MinAddressLen && n <= MaxAddressLen
}

// Notes trims optional handling instructions. Blank collapses to "".
func Notes(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, utf8.RuneCountInString(s) <= MaxNotesLen
}

// PickupDate requires a YYYY-MM-DD value no earlier than tomorrow
// relative to now. The form sets the same minimum on its date input;
// this is the server-side check behind it.
func PickupDate(s string, now time.Time) (string, bool) {
	s = strings.TrimSpace(s)
	if !reDate.MatchString(s) {
		return "", false
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", false
	}
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	return s, d.Format("2006-01-02") >= tomorrow
}

// Password enforces a simple length window for login checks.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 20 {
		return false
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}

package format

import "regexp"

var ssnPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)

// ValidationError is a user-facing input rejection. Hosts surface Message to
// the person filling out the form and block progress until corrected.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// ValidSSN checks that a Social Security Number is written as three digits,
// a hyphen, two digits, a hyphen, and four final digits. A mismatch returns
// a ValidationError with the correction hint.
func ValidSSN(raw string) error {
	if !ssnPattern.MatchString(raw) {
		return ValidationError{Message: "Write the Social Security Number like this: XXX-XX-XXXX"}
	}
	return nil
}

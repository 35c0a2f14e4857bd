package app

import "regexp"

const minPasswordLength = 8

// emailPattern accepts local@domain.tld: no whitespace or extra @ on either
// side, and the domain must contain a dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// isValidPassword enforces the signup password policy: at least 8
// characters, at least one letter and one digit, and nothing outside
// letters and digits. The character set is an allow-list, not a minimum.
func isValidPassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			return false
		}
	}

	return hasLetter && hasDigit
}

func passwordsMatch(password, confirmPassword string) bool {
	return password == confirmPassword
}

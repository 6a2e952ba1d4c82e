package validators

import "regexp"

// Field rules shared by registration, password update and admin user
// creation. Each returns ok plus a message for the first failing rule.

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateName(name string) (bool, string) {
	if name == "" {
		return false, "Name required"
	}
	if len(name) < 20 {
		return false, "Name must be at least 20 characters"
	}
	if len(name) > 60 {
		return false, "Name must be at most 60 characters"
	}
	return true, ""
}

// Address is optional in some flows; empty passes.
func ValidateAddress(address string) (bool, string) {
	if address == "" {
		return true, ""
	}
	if len(address) > 400 {
		return false, "Address must be at most 400 characters"
	}
	return true, ""
}

func ValidatePassword(password string) (bool, string) {
	if password == "" {
		return false, "Password required"
	}
	if len(password) < 8 || len(password) > 16 {
		return false, "Password must be 8-16 characters"
	}
	var hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		default:
			hasSpecial = true
		}
	}
	if !hasUpper {
		return false, "Password must include at least one uppercase letter"
	}
	if !hasSpecial {
		return false, "Password must include at least one special character"
	}
	return true, ""
}

func ValidateEmail(email string) (bool, string) {
	if email == "" {
		return false, "Email required"
	}
	if !emailRe.MatchString(email) {
		return false, "Email is invalid"
	}
	return true, ""
}

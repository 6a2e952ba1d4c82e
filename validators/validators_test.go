package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOK  bool
		wantMsg string
	}{
		{"empty", "", false, "Name required"},
		{"too short", "Short Name", false, "Name must be at least 20 characters"},
		{"exactly 20", strings.Repeat("a", 20), true, ""},
		{"exactly 60", strings.Repeat("a", 60), true, ""},
		{"too long", strings.Repeat("a", 61), false, "Name must be at most 60 characters"},
		{"typical", "Jonathan Michael Carter", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidateName(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestValidateAddress(t *testing.T) {
	ok, msg := ValidateAddress("")
	assert.True(t, ok, "address is optional")
	assert.Empty(t, msg)

	ok, _ = ValidateAddress(strings.Repeat("a", 400))
	assert.True(t, ok)

	ok, msg = ValidateAddress(strings.Repeat("a", 401))
	assert.False(t, ok)
	assert.Equal(t, "Address must be at most 400 characters", msg)
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOK  bool
		wantMsg string
	}{
		{"empty", "", false, "Password required"},
		{"too short", "Ab!4567", false, "Password must be 8-16 characters"},
		{"too long", "Ab!45678901234567", false, "Password must be 8-16 characters"},
		{"no uppercase", "str0ng!pass", false, "Password must include at least one uppercase letter"},
		{"no special", "Str0ngPass1", false, "Password must include at least one special character"},
		{"valid", "Str0ng!Pass", true, ""},
		{"valid minimum", "Abcdef!1", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidatePassword(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		input  string
		wantOK bool
	}{
		{"", false},
		{"not-an-email", false},
		{"a@b", false},
		{"a @b.com", false},
		{"jon@example.com", true},
		{"UPPER@EXAMPLE.COM", true},
	}
	for _, tt := range tests {
		ok, _ := ValidateEmail(tt.input)
		assert.Equalf(t, tt.wantOK, ok, "email %q", tt.input)
	}
}

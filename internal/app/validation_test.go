package app

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"plain address", "alice@example.com", true},
		{"subdomain", "alice@mail.example.co.uk", true},
		{"plus tag", "alice+movies@example.com", true},
		{"no at sign", "bad", false},
		{"no domain dot", "alice@example", false},
		{"empty local part", "@example.com", false},
		{"empty domain", "alice@", false},
		{"whitespace in local part", "ali ce@example.com", false},
		{"whitespace in domain", "alice@exa mple.com", false},
		{"two at signs", "alice@bob@example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidEmail(tt.email); got != tt.want {
				t.Fatalf("isValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"letters and digits", "abcdefg1", true},
		{"mixed case", "Password1", true},
		{"digits heavy", "1234567a", true},
		{"too short", "short1", false},
		{"no digit", "abcdefgh", false},
		{"no letter", "12345678", false},
		{"symbol rejected by allow-list", "abcdefg1!", false},
		{"space rejected", "abcdef g1", false},
		{"unicode rejected", "pässword1", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidPassword(tt.password); got != tt.want {
				t.Fatalf("isValidPassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestPasswordsMatch(t *testing.T) {
	if !passwordsMatch("abcdefg1", "abcdefg1") {
		t.Fatal("expected identical passwords to match")
	}
	if passwordsMatch("abcdefg1", "abcdefg2") {
		t.Fatal("expected different passwords not to match")
	}
	if passwordsMatch("abcdefg1", "") {
		t.Fatal("expected empty confirmation not to match")
	}
}

func TestProfilePicFor(t *testing.T) {
	if got := profilePicFor("male", "alice"); got != "https://avatar.iran.liara.run/public/boy?username=alice" {
		t.Fatalf("unexpected male profile pic: %q", got)
	}
	if got := profilePicFor("female", "alice"); got != "https://avatar.iran.liara.run/public/girl?username=alice" {
		t.Fatalf("unexpected female profile pic: %q", got)
	}
}

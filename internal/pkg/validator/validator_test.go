package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-06-01"); !ok {
		t.Error("IsValidDate(2026-06-01) = false, want true")
	}
	for _, s := range []string{"2026-13-01", "01-06-2026", "2026-06-32", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPAN(t *testing.T) {
	valid := []string{"ABCDE1234F", "abcde1234f"}
	invalid := []string{"ABCD1234F", "ABCDE12345", "ABCDE1234", "1234567890", ""}
	for _, pan := range valid {
		if !IsValidPAN(pan) {
			t.Errorf("IsValidPAN(%q) = false, want true", pan)
		}
	}
	for _, pan := range invalid {
		if IsValidPAN(pan) {
			t.Errorf("IsValidPAN(%q) = true, want false", pan)
		}
	}
}

func TestIsValidIFSC(t *testing.T) {
	valid := []string{"HDFC0001234", "sbin0005943"}
	invalid := []string{"HDFC001234", "HDF00012345", "HDFC1001234", ""}
	for _, ifsc := range valid {
		if !IsValidIFSC(ifsc) {
			t.Errorf("IsValidIFSC(%q) = false, want true", ifsc)
		}
	}
	for _, ifsc := range invalid {
		if IsValidIFSC(ifsc) {
			t.Errorf("IsValidIFSC(%q) = true, want false", ifsc)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "too short"},
	}
	if errs.Error() != "email: is required; password: too short" {
		t.Errorf("Error() = %q", errs.Error())
	}
	m := errs.ToMap()
	if m["email"] != "is required" || m["password"] != "too short" {
		t.Errorf("ToMap() = %v", m)
	}
}

package security

import (
	"errors"
	"testing"
)

func TestValidateHexColour(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "#fff", wantErr: false},
		{in: "fff", wantErr: false},
		{in: "#FF5733", wantErr: false},
		{in: "ff5733", wantErr: false},
		{in: "#ff573", wantErr: true},
		{in: "#ff573300", wantErr: true},
		{in: "#ggg", wantErr: true},
		{in: "##fff", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := ValidateHexColour(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateHexColour(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidHexColour) {
				t.Errorf("ValidateHexColour(%q) error = %v, want ErrInvalidHexColour", tt.in, err)
			}
		})
	}
}

func TestValidateHexColours(t *testing.T) {
	if err := ValidateHexColours("#fff", "000000"); err != nil {
		t.Errorf("ValidateHexColours() unexpected error: %v", err)
	}
	err := ValidateHexColours("#fff", "nope", "#12")
	if !errors.Is(err, ErrInvalidHexColour) {
		t.Fatalf("ValidateHexColours() error = %v, want ErrInvalidHexColour", err)
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"johndoe@gmail.com", "first.last@sub.example.org", `"odd name"@example.com`, "user@[192.168.0.1]"}
	invalid := []string{"notanemail", "a@b", "two@@example.com", "spa ce@example.com"}

	for _, s := range valid {
		if err := ValidateEmail(s); err != nil {
			t.Errorf("ValidateEmail(%q) unexpected error: %v", s, err)
		}
	}
	for _, s := range invalid {
		if err := ValidateEmail(s); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("ValidateEmail(%q) error = %v, want ErrInvalidEmail", s, err)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	if err := ValidatePhone("+7 (999) 750-66-23"); err != nil {
		t.Errorf("ValidatePhone() unexpected error: %v", err)
	}
	for _, s := range []string{"789123013788", "+7 999 750-66-23", "+1 (999) 750-66-23"} {
		if err := ValidatePhone(s); !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("ValidatePhone(%q) error = %v, want ErrInvalidPhone", s, err)
		}
	}
}

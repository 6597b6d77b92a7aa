package model

import (
	"errors"
	"strings"
	"testing"
)

func TestNewProfile(t *testing.T) {
	tests := []struct {
		name      string
		accountID int64
		input     string
		wantErr   error
		wantName  string
	}{
		{name: "valid", accountID: 7, input: "Kids", wantName: "Kids"},
		{name: "trims whitespace", accountID: 7, input: "  Kids  ", wantName: "Kids"},
		{name: "empty name", accountID: 7, input: "", wantErr: ErrEmptyProfileName},
		{name: "whitespace only name", accountID: 7, input: "   ", wantErr: ErrEmptyProfileName},
		{name: "name too long", accountID: 7, input: strings.Repeat("a", 51), wantErr: ErrProfileNameTooLong},
		{name: "name at limit", accountID: 7, input: strings.Repeat("a", 50), wantName: strings.Repeat("a", 50)},
		{name: "zero account id", accountID: 0, input: "Kids", wantErr: ErrInvalidAccountID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := NewProfile(tt.accountID, tt.input, "", "", "")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if profile.Name != tt.wantName {
				t.Errorf("expected name %q, got %q", tt.wantName, profile.Name)
			}
		})
	}
}

func TestNewProfile_Defaults(t *testing.T) {
	profile, err := NewProfile(7, "Kids", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Picture != DefaultProfilePicture {
		t.Errorf("expected default picture %q, got %q", DefaultProfilePicture, profile.Picture)
	}
	if profile.Language != DefaultLanguage {
		t.Errorf("expected default language %q, got %q", DefaultLanguage, profile.Language)
	}
	if profile.AgeRestriction != DefaultAgeRestriction {
		t.Errorf("expected default age restriction %q, got %q", DefaultAgeRestriction, profile.AgeRestriction)
	}
}

func TestNewProfile_ExplicitValuesKept(t *testing.T) {
	profile, err := NewProfile(7, "Kids", "cat.png", "German", "Kids")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Picture != "cat.png" || profile.Language != "German" || profile.AgeRestriction != "Kids" {
		t.Errorf("explicit values overwritten: %+v", profile)
	}
}

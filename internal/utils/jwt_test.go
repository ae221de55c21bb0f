package utils

import (
	"testing"
	"time"
)

func TestGenerateAndValidateJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("organizer-1", "organizer", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	userID, role, err := ValidateJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateJWT error: %v", err)
	}
	if userID != "organizer-1" || role != "organizer" {
		t.Errorf("ValidateJWT = (%q, %q), want (%q, %q)", userID, role, "organizer-1", "organizer")
	}
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("organizer-1", "organizer", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}
	if _, _, err := ValidateJWT(token, "wrong-secret"); err == nil {
		t.Errorf("expected an error validating a token against the wrong secret")
	}
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJWT("organizer-1", "organizer", "test-secret", -time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}
	if _, _, err := ValidateJWT(token, "test-secret"); err == nil {
		t.Errorf("expected an error validating an expired token")
	}
}

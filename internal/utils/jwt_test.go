package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, "user-123", models.RoleUser, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*models.Claims)
	if !ok {
		t.Fatal("could not cast claims to models.Claims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "user-123" {
		t.Errorf("expected subject 'user-123', got %s", claims.Subject)
	}
	if claims.Role != models.RoleUser {
		t.Errorf("expected role %s, got %s", models.RoleUser, claims.Role)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		role     string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u", models.RoleUser, time.Hour, "key"},
		{"empty subject", "iss", "", models.RoleUser, time.Hour, "key"},
		{"empty role", "iss", "u", "", time.Hour, "key"},
		{"zero duration", "iss", "u", models.RoleUser, 0, "key"},
		{"empty key", "iss", "u", models.RoleUser, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, tt.role, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	genToken, _ := GenerateJWTToken(issuer, "admin@example.com", models.RoleAdmin, 5*time.Minute, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Subject != "admin@example.com" {
		t.Errorf("expected subject admin@example.com, got %s", parsedToken.Subject)
	}
	if !parsedToken.IsAdmin() {
		t.Error("expected admin token")
	}
}

func TestValidateAndParseJWTToken_Errors(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	valid, _ := GenerateJWTToken(issuer, "u1", models.RoleUser, time.Hour, key)
	expired, _ := GenerateJWTToken(issuer, "u1", models.RoleUser, -time.Hour, key)

	noRoleClaims := &models.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	noRole, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, noRoleClaims).SignedString([]byte(key))

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", issuer},
		{"wrong issuer", valid.SignedString, key, "other-issuer"},
		{"expired", expired.SignedString, key, issuer},
		{"malformed", "not.a.token", key, issuer},
		{"missing role", noRole, key, issuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer abc  ", "abc", false},
		{"missing token", "Bearer ", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"empty", "", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseSubjectFromJWT(t *testing.T) {
	token, _ := GenerateJWTToken("iss", "user-7", models.RoleUser, time.Hour, "key")

	sub, err := ParseSubjectFromJWT(token.SignedString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub != "user-7" {
		t.Errorf("expected user-7, got %s", sub)
	}

	if _, err := ParseSubjectFromJWT(strings.Repeat("x", 10)); err == nil {
		t.Error("expected error for malformed token")
	}
}

package adapters

import "testing"

func TestPasswordServiceHashAndVerify(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("correct-horse1")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if hash == "correct-horse1" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if err := service.VerifyPassword(hash, "correct-horse1"); err != nil {
		t.Errorf("expected correct password to verify, got %v", err)
	}
	if err := service.VerifyPassword(hash, "wrong-password1"); err == nil {
		t.Error("expected wrong password to fail verification")
	}
}

func TestPasswordServiceValidateStrength(t *testing.T) {
	service := NewPasswordService()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "passw0rd", false},
		{"too short", "ab1", true},
		{"no digit", "passwords", true},
		{"no letter", "12345678", true},
		{"unicode letters", "pässwörd1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePasswordStrength(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

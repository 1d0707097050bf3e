package utils

import "testing"

func TestGenerateVerificationCode(t *testing.T) {
	code, err := GenerateVerificationCode(6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("code length = %d, want 6", len(code))
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			t.Fatalf("code %q contains non-digit %q", code, c)
		}
	}
}

func TestGenerateResetToken(t *testing.T) {
	first, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 80 {
		t.Fatalf("token length = %d, want 80 hex chars", len(first))
	}

	second, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("two tokens should not collide")
	}
}

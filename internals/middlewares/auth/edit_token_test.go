package auth

import (
	"testing"
	"time"
)

func TestEditTokenRoundTrip(t *testing.T) {
	tok, err := IssueEditToken("secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueEditToken() failed: %v", err)
	}
	if err := VerifyEditToken("secret", tok); err != nil {
		t.Errorf("VerifyEditToken() failed: %v", err)
	}
}

func TestEditTokenWrongSecret(t *testing.T) {
	tok, err := IssueEditToken("secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueEditToken() failed: %v", err)
	}
	if err := VerifyEditToken("other-secret", tok); err != ErrInvalidEditToken {
		t.Errorf("err = %v, want ErrInvalidEditToken", err)
	}
}

func TestEditTokenExpired(t *testing.T) {
	tok, err := IssueEditToken("secret", -time.Minute)
	if err != nil {
		t.Fatalf("IssueEditToken() failed: %v", err)
	}
	if err := VerifyEditToken("secret", tok); err != ErrInvalidEditToken {
		t.Errorf("err = %v, want ErrInvalidEditToken", err)
	}
}

func TestEditTokenMissing(t *testing.T) {
	if err := VerifyEditToken("secret", ""); err != ErrInvalidEditToken {
		t.Errorf("err = %v, want ErrInvalidEditToken", err)
	}
}

package service

import (
	"testing"

	"pteguide_backend/internals/features/users/account/model"
	"pteguide_backend/internals/testutils"
)

func TestRegisterThenAuthenticate(t *testing.T) {
	svc := NewAccountService(testutils.NewDB(t))

	user, err := svc.Register("alice", "1234")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("Register() returned user without id")
	}
	if want := model.HashPIN("alice", "1234"); user.PinHash != want {
		t.Errorf("pin hash = %q, want %q", user.PinHash, want)
	}

	got, err := svc.Authenticate("alice", "1234")
	if err != nil {
		t.Fatalf("Authenticate() failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated id = %d, want %d", got.ID, user.ID)
	}
}

func TestAuthenticateNoMatchIsUniform(t *testing.T) {
	svc := NewAccountService(testutils.NewDB(t))
	if _, err := svc.Register("alice", "1234"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	// wrong PIN and unknown name must be indistinguishable
	if _, err := svc.Authenticate("alice", "9999"); err != ErrNoMatch {
		t.Errorf("wrong pin err = %v, want ErrNoMatch", err)
	}
	if _, err := svc.Authenticate("nobody", "1234"); err != ErrNoMatch {
		t.Errorf("unknown name err = %v, want ErrNoMatch", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAccountService(testutils.NewDB(t))

	if _, err := svc.Register("", "1234"); err != ErrCredentialsRequired {
		t.Errorf("empty name err = %v, want ErrCredentialsRequired", err)
	}
	if _, err := svc.Register("alice", ""); err != ErrCredentialsRequired {
		t.Errorf("empty pin err = %v, want ErrCredentialsRequired", err)
	}
	for _, pin := range []string{"123", "1234567", "12a4", "12.45"} {
		if _, err := svc.Register("alice", pin); err != ErrInvalidPIN {
			t.Errorf("pin %q err = %v, want ErrInvalidPIN", pin, err)
		}
	}
}

func TestRegisterDuplicatePair(t *testing.T) {
	svc := NewAccountService(testutils.NewDB(t))

	if _, err := svc.Register("alice", "1234"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if _, err := svc.Register("alice", "1234"); err != ErrDuplicate {
		t.Errorf("duplicate err = %v, want ErrDuplicate", err)
	}

	// same name with a different PIN is a distinct identity
	other, err := svc.Register("alice", "5678")
	if err != nil {
		t.Fatalf("Register() with new pin failed: %v", err)
	}
	got, err := svc.Authenticate("alice", "5678")
	if err != nil {
		t.Fatalf("Authenticate() failed: %v", err)
	}
	if got.ID != other.ID {
		t.Errorf("authenticated id = %d, want %d", got.ID, other.ID)
	}
}

func TestTouchLastLogin(t *testing.T) {
	svc := NewAccountService(testutils.NewDB(t))

	user, err := svc.Register("alice", "1234")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	before := user.LastLogin
	if err := svc.TouchLastLogin(user); err != nil {
		t.Fatalf("TouchLastLogin() failed: %v", err)
	}
	if !user.LastLogin.After(before) && !user.LastLogin.Equal(before) {
		t.Errorf("last login went backwards: %v -> %v", before, user.LastLogin)
	}
	var stored model.SimpleUserModel
	if err := svc.db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.LastLogin.IsZero() {
		t.Error("stored last_login is zero after touch")
	}
}

package service

import (
	"testing"

	"pteguide_backend/internals/features/spelling/dto"
	"pteguide_backend/internals/features/spelling/model"
	"pteguide_backend/internals/testutils"
)

func TestAddFirstOccurrence(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewSpellingService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")

	mistake, err := svc.Add(user.ID, &dto.MistakeRequest{
		IncorrectWord: "recieve",
		CorrectWord:   "receive",
		Context:       "essay task 2",
	})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if mistake.Frequency != 1 || mistake.IsReviewed {
		t.Errorf("mistake = %+v, want frequency 1 unreviewed", mistake)
	}
}

func TestAddRepeatIncrementsInsteadOfDuplicating(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewSpellingService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")

	first, err := svc.Add(user.ID, &dto.MistakeRequest{IncorrectWord: "recieve", CorrectWord: "receive"})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if _, err := svc.ToggleReviewed(user.ID, first.ID); err != nil {
		t.Fatalf("ToggleReviewed() failed: %v", err)
	}

	// repeat with different casing still matches the existing pair
	again, err := svc.Add(user.ID, &dto.MistakeRequest{IncorrectWord: "RECIEVE", CorrectWord: "Receive"})
	if err != nil {
		t.Fatalf("repeat Add() failed: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("repeat created a new row: %d vs %d", again.ID, first.ID)
	}
	if again.Frequency != 2 {
		t.Errorf("frequency = %d, want 2", again.Frequency)
	}
	if again.IsReviewed {
		t.Error("reviewed flag must reset on a repeat occurrence")
	}

	var count int64
	db.Model(&model.SpellingMistakeModel{}).Count(&count)
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
}

func TestAddKeepsContextUnlessReplaced(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewSpellingService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")

	if _, err := svc.Add(user.ID, &dto.MistakeRequest{
		IncorrectWord: "seperate", CorrectWord: "separate", Context: "summarize written text",
	}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	// empty context/notes leave the stored values alone
	kept, err := svc.Add(user.ID, &dto.MistakeRequest{IncorrectWord: "seperate", CorrectWord: "separate"})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if kept.Context != "summarize written text" {
		t.Errorf("context = %q, want original kept", kept.Context)
	}

	replaced, err := svc.Add(user.ID, &dto.MistakeRequest{
		IncorrectWord: "seperate", CorrectWord: "separate", Context: "write from dictation",
	})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if replaced.Context != "write from dictation" {
		t.Errorf("context = %q, want overwritten", replaced.Context)
	}
}

func TestAddValidation(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewSpellingService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")

	if _, err := svc.Add(user.ID, &dto.MistakeRequest{CorrectWord: "receive"}); err != ErrWordsRequired {
		t.Errorf("missing incorrect err = %v, want ErrWordsRequired", err)
	}
	if _, err := svc.Add(user.ID, &dto.MistakeRequest{IncorrectWord: "recieve"}); err != ErrWordsRequired {
		t.Errorf("missing correct err = %v, want ErrWordsRequired", err)
	}
}

func TestPairIsPerUser(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewSpellingService(db)
	alice := testutils.CreateUser(t, db, "alice", "1234")
	bob := testutils.CreateUser(t, db, "bob", "5678")

	if _, err := svc.Add(alice.ID, &dto.MistakeRequest{IncorrectWord: "recieve", CorrectWord: "receive"}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	theirs, err := svc.Add(bob.ID, &dto.MistakeRequest{IncorrectWord: "recieve", CorrectWord: "receive"})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if theirs.Frequency != 1 {
		t.Errorf("bob's frequency = %d, want a fresh row", theirs.Frequency)
	}
}

func TestOwnershipScoping(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewSpellingService(db)
	alice := testutils.CreateUser(t, db, "alice", "1234")
	bob := testutils.CreateUser(t, db, "bob", "5678")

	mistake, err := svc.Add(alice.ID, &dto.MistakeRequest{IncorrectWord: "recieve", CorrectWord: "receive"})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if _, err := svc.ToggleReviewed(bob.ID, mistake.ID); err != ErrMistakeNotFound {
		t.Errorf("foreign toggle err = %v, want ErrMistakeNotFound", err)
	}
	if _, err := svc.Update(bob.ID, mistake.ID, &dto.MistakeRequest{IncorrectWord: "x", CorrectWord: "y"}); err != ErrMistakeNotFound {
		t.Errorf("foreign update err = %v, want ErrMistakeNotFound", err)
	}
	if err := svc.Delete(bob.ID, mistake.ID); err != ErrMistakeNotFound {
		t.Errorf("foreign delete err = %v, want ErrMistakeNotFound", err)
	}

	// the owner still can
	if _, err := svc.ToggleReviewed(alice.ID, mistake.ID); err != nil {
		t.Errorf("owner toggle failed: %v", err)
	}
	if err := svc.Delete(alice.ID, mistake.ID); err != nil {
		t.Errorf("owner delete failed: %v", err)
	}
}

func TestListFilters(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewSpellingService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")

	reviewed, err := svc.Add(user.ID, &dto.MistakeRequest{IncorrectWord: "recieve", CorrectWord: "receive"})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if _, err := svc.ToggleReviewed(user.ID, reviewed.ID); err != nil {
		t.Fatalf("ToggleReviewed() failed: %v", err)
	}
	if _, err := svc.Add(user.ID, &dto.MistakeRequest{
		IncorrectWord: "seperate", CorrectWord: "separate", Context: "dictation drill",
	}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	all, err := svc.List(user.ID, "", "")
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all = %d rows, want 2", len(all))
	}

	pending, err := svc.List(user.ID, "false", "")
	if err != nil {
		t.Fatalf("List(pending) failed: %v", err)
	}
	if len(pending) != 1 || pending[0].IncorrectWord != "seperate" {
		t.Errorf("pending = %+v", pending)
	}

	done, err := svc.List(user.ID, "true", "")
	if err != nil {
		t.Fatalf("List(reviewed) failed: %v", err)
	}
	if len(done) != 1 || done[0].IncorrectWord != "recieve" {
		t.Errorf("reviewed = %+v", done)
	}

	// search hits context too, case-insensitively
	byContext, err := svc.List(user.ID, "", "DICTATION")
	if err != nil {
		t.Fatalf("List(search) failed: %v", err)
	}
	if len(byContext) != 1 || byContext[0].IncorrectWord != "seperate" {
		t.Errorf("search = %+v", byContext)
	}
}

func TestListOrdersByFrequency(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewSpellingService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")

	if _, err := svc.Add(user.ID, &dto.MistakeRequest{IncorrectWord: "rare", CorrectWord: "rarely"}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.Add(user.ID, &dto.MistakeRequest{IncorrectWord: "recieve", CorrectWord: "receive"}); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	rows, err := svc.List(user.ID, "", "")
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if rows[0].IncorrectWord != "recieve" || rows[0].Frequency != 3 {
		t.Errorf("first row = %+v, want the frequent one", rows[0])
	}
}

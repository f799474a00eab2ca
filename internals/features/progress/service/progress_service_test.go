package service

import (
	"testing"
	"time"

	"pteguide_backend/internals/features/progress/model"
	"pteguide_backend/internals/testutils"
)

func TestToggleCreatesRowAndSetsTimestamp(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewProgressService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")
	section := testutils.CreateSection(t, db, "reading", "Reading")
	content := testutils.CreateContent(t, db, section.ID, "Passage", "text")

	res, err := svc.Toggle(user.ID, content.ID, ActionComplete)
	if err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}
	if !res.IsCompleted || res.IsFavorited {
		t.Errorf("result = %+v, want completed only", res)
	}

	var row model.UserProgressModel
	if err := db.Where("user_id = ? AND content_id = ?", user.ID, content.ID).First(&row).Error; err != nil {
		t.Fatalf("progress row missing: %v", err)
	}
	if row.CompletedAt == nil {
		t.Error("completed_at not set with the flag")
	}
	if row.FavoritedAt != nil {
		t.Error("favorited_at set without the flag")
	}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewProgressService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")
	section := testutils.CreateSection(t, db, "reading", "Reading")
	content := testutils.CreateContent(t, db, section.ID, "Passage", "text")

	if _, err := svc.Toggle(user.ID, content.ID, ActionFavorite); err != nil {
		t.Fatalf("first Toggle() failed: %v", err)
	}
	res, err := svc.Toggle(user.ID, content.ID, ActionFavorite)
	if err != nil {
		t.Fatalf("second Toggle() failed: %v", err)
	}
	if res.IsFavorited {
		t.Error("flag still set after double toggle")
	}

	var row model.UserProgressModel
	if err := db.Where("user_id = ? AND content_id = ?", user.ID, content.ID).First(&row).Error; err != nil {
		t.Fatalf("progress row missing: %v", err)
	}
	if row.FavoritedAt != nil {
		t.Error("favorited_at not cleared with the flag")
	}

	var count int64
	db.Model(&model.UserProgressModel{}).Count(&count)
	if count != 1 {
		t.Errorf("progress rows = %d, want 1", count)
	}
}

func TestToggleIndependentFlags(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewProgressService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")
	section := testutils.CreateSection(t, db, "reading", "Reading")
	content := testutils.CreateContent(t, db, section.ID, "Passage", "text")

	if _, err := svc.Toggle(user.ID, content.ID, ActionComplete); err != nil {
		t.Fatalf("Toggle(complete) failed: %v", err)
	}
	res, err := svc.Toggle(user.ID, content.ID, ActionFavorite)
	if err != nil {
		t.Fatalf("Toggle(favorite) failed: %v", err)
	}
	if !res.IsCompleted || !res.IsFavorited {
		t.Errorf("result = %+v, want both flags set", res)
	}
}

func TestToggleBadInput(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewProgressService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")
	section := testutils.CreateSection(t, db, "reading", "Reading")
	content := testutils.CreateContent(t, db, section.ID, "Passage", "text")

	if _, err := svc.Toggle(user.ID, content.ID, "promote"); err != ErrUnknownAction {
		t.Errorf("unknown action err = %v, want ErrUnknownAction", err)
	}
	if _, err := svc.Toggle(user.ID, 9999, ActionComplete); err != ErrContentNotFound {
		t.Errorf("missing content err = %v, want ErrContentNotFound", err)
	}
}

func TestSummary(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewProgressService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")
	reading := testutils.CreateSection(t, db, "reading", "Reading")
	empty := testutils.CreateSection(t, db, "writing", "Writing")

	a := testutils.CreateContent(t, db, reading.ID, "A", "text")
	testutils.CreateContent(t, db, reading.ID, "B", "text")
	inactive := testutils.CreateContent(t, db, reading.ID, "C", "text")
	db.Model(inactive).Update("is_active", false)

	if _, err := svc.Toggle(user.ID, a.ID, ActionComplete); err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}

	summaries, err := svc.Summary(user.ID)
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2", len(summaries))
	}

	got := map[string]SectionSummary{}
	for _, sum := range summaries {
		got[sum.Section.Name] = sum
	}
	if r := got["reading"]; r.Total != 2 || r.Completed != 1 || r.Percentage != 50 {
		t.Errorf("reading summary = %+v, want total=2 completed=1 50%%", r)
	}
	// no active content must read as 0, never divide by zero
	if w := got[empty.Name]; w.Total != 0 || w.Percentage != 0 {
		t.Errorf("empty section summary = %+v, want zeros", w)
	}
}

func TestRecentCompletedOrderAndLimit(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewProgressService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")
	section := testutils.CreateSection(t, db, "reading", "Reading")

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"First", "Second", "Third"} {
		content := testutils.CreateContent(t, db, section.ID, title, "text")
		at := base.Add(time.Duration(i) * time.Minute)
		row := model.UserProgressModel{
			UserID: user.ID, ContentID: content.ID,
			IsCompleted: true, CompletedAt: &at,
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed progress: %v", err)
		}
	}

	rows, err := svc.RecentCompleted(user.ID, 2)
	if err != nil {
		t.Fatalf("RecentCompleted() failed: %v", err)
	}
	if len(rows) != 2 || rows[0].Content.Title != "Third" || rows[1].Content.Title != "Second" {
		t.Errorf("unexpected recent order: %+v", rows)
	}
}

func TestFavoritesOrder(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewProgressService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")
	section := testutils.CreateSection(t, db, "reading", "Reading")

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"Old fave", "New fave"} {
		content := testutils.CreateContent(t, db, section.ID, title, "text")
		at := base.Add(time.Duration(i) * time.Minute)
		row := model.UserProgressModel{
			UserID: user.ID, ContentID: content.ID,
			IsFavorited: true, FavoritedAt: &at,
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed progress: %v", err)
		}
	}

	rows, err := svc.Favorites(user.ID)
	if err != nil {
		t.Fatalf("Favorites() failed: %v", err)
	}
	if len(rows) != 2 || rows[0].Content.Title != "New fave" {
		t.Errorf("unexpected favorites order: %+v", rows)
	}
}

func TestSaveNotes(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewProgressService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")
	section := testutils.CreateSection(t, db, "reading", "Reading")
	content := testutils.CreateContent(t, db, section.ID, "Passage", "text")

	if err := svc.SaveNotes(user.ID, content.ID, "tricky vocabulary"); err != nil {
		t.Fatalf("SaveNotes() failed: %v", err)
	}
	var row model.UserProgressModel
	if err := db.Where("user_id = ? AND content_id = ?", user.ID, content.ID).First(&row).Error; err != nil {
		t.Fatalf("progress row missing: %v", err)
	}
	if row.Notes != "tricky vocabulary" {
		t.Errorf("notes = %q", row.Notes)
	}
	if row.IsCompleted || row.IsFavorited {
		t.Error("notes save must not touch the flags")
	}

	if err := svc.SaveNotes(user.ID, 9999, "x"); err != ErrContentNotFound {
		t.Errorf("missing content err = %v, want ErrContentNotFound", err)
	}
}

func TestMapForContents(t *testing.T) {
	db := testutils.NewDB(t)
	svc := NewProgressService(db)
	user := testutils.CreateUser(t, db, "alice", "1234")
	section := testutils.CreateSection(t, db, "reading", "Reading")
	a := testutils.CreateContent(t, db, section.ID, "A", "text")
	b := testutils.CreateContent(t, db, section.ID, "B", "text")

	if _, err := svc.Toggle(user.ID, a.ID, ActionComplete); err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}

	m, err := svc.MapForContents(user.ID, []uint{a.ID, b.ID})
	if err != nil {
		t.Fatalf("MapForContents() failed: %v", err)
	}
	if len(m) != 1 || !m[a.ID].IsCompleted {
		t.Errorf("map = %+v", m)
	}

	anon, err := svc.MapForContents(0, []uint{a.ID})
	if err != nil {
		t.Fatalf("MapForContents(anonymous) failed: %v", err)
	}
	if len(anon) != 0 {
		t.Errorf("anonymous map = %+v, want empty", anon)
	}
}

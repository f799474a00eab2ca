package testutils

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	database "pteguide_backend/internals/databases"
	contentModel "pteguide_backend/internals/features/guide/content/model"
	sectionModel "pteguide_backend/internals/features/guide/section/model"
	accountModel "pteguide_backend/internals/features/users/account/model"
)

// NewDB opens an isolated in-memory SQLite database with FK cascades enabled
// and the full production schema migrated. Pool is pinned to one connection so
// every query sees the same :memory: database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, name, pin string) *accountModel.SimpleUserModel {
	t.Helper()
	user := accountModel.SimpleUserModel{Name: name}
	user.SetPIN(pin)
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %q: %v", name, err)
	}
	return &user
}

func CreateSection(t *testing.T, db *gorm.DB, name, title string) *sectionModel.SectionModel {
	t.Helper()
	section := sectionModel.SectionModel{Name: name, Title: title}
	if err := db.Create(&section).Error; err != nil {
		t.Fatalf("create section %q: %v", name, err)
	}
	return &section
}

func CreateContent(t *testing.T, db *gorm.DB, sectionID uint, title, contentType string) *contentModel.ContentModel {
	t.Helper()
	content := contentModel.ContentModel{
		SectionID:   sectionID,
		Title:       title,
		ContentType: contentType,
		IsActive:    true,
	}
	if err := db.Create(&content).Error; err != nil {
		t.Fatalf("create content %q: %v", title, err)
	}
	return &content
}

func CreateTag(t *testing.T, db *gorm.DB, name, color string) *contentModel.TagModel {
	t.Helper()
	tag := contentModel.TagModel{Name: name, Color: color}
	if err := db.Create(&tag).Error; err != nil {
		t.Fatalf("create tag %q: %v", name, err)
	}
	return &tag
}

func AttachTag(t *testing.T, db *gorm.DB, contentID, tagID uint) {
	t.Helper()
	ct := contentModel.ContentTagModel{ContentID: contentID, TagID: tagID}
	if err := db.Create(&ct).Error; err != nil {
		t.Fatalf("attach tag %d to content %d: %v", tagID, contentID, err)
	}
}

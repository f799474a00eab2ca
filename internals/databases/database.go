package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	accountModel "pteguide_backend/internals/features/users/account/model"
	contentModel "pteguide_backend/internals/features/guide/content/model"
	sectionModel "pteguide_backend/internals/features/guide/section/model"
	progressModel "pteguide_backend/internals/features/progress/model"
	spellingModel "pteguide_backend/internals/features/spelling/model"
	whiteboardModel "pteguide_backend/internals/features/whiteboard/model"
)

var DB *gorm.DB

func ConnectDB() {
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=pteguide&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // keeps PgBouncer transaction pooling happy
	}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	DB = db
	log.Println("db connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("db pool handle unavailable: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// Migrate creates the application tables. Order matters: referenced tables first
// so the FK constraints (all ON DELETE CASCADE) can be created in one pass.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountModel.SimpleUserModel{},
		&sectionModel.SectionModel{},
		&contentModel.TagModel{},
		&contentModel.ContentModel{},
		&contentModel.ContentTagModel{},
		&progressModel.UserProgressModel{},
		&spellingModel.SpellingMistakeModel{},
		&whiteboardModel.WhiteboardImageModel{},
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

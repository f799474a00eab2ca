package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	SessionSecret string
	EditPasscode  string
	EditTokenTTL  time.Duration
	RunSeeds      bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system ENV")
	}

	SessionSecret = GetEnv("SESSION_SECRET")
	EditPasscode = GetEnv("EDIT_PASSCODE")
	RunSeeds = os.Getenv("RUN_SEEDS") == "true"

	EditTokenTTL = 2 * time.Hour
	if raw := os.Getenv("EDIT_TOKEN_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			EditTokenTTL = d
		} else {
			log.Printf("invalid EDIT_TOKEN_TTL %q, keeping %s", raw, EditTokenTTL)
		}
	}

	if SessionSecret == "" {
		log.Println("SESSION_SECRET is not set; edit-mode tokens cannot be issued")
	}
	if EditPasscode == "" {
		log.Println("EDIT_PASSCODE is not set; content editing is locked")
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

package seeds

import (
	"log"

	"gorm.io/gorm"

	guideSeeds "pteguide_backend/internals/seeds/guide"
)

// RunAllSeeds populates the reference data a fresh install needs: the exam
// sections, the default tag set and a couple of starter items. Every seed is
// idempotent so this is safe to run on each boot.
func RunAllSeeds(db *gorm.DB) {
	log.Println("running seeds")

	guideSeeds.SeedSections(db)
	guideSeeds.SeedTags(db)
	guideSeeds.SeedSampleContent(db)
}

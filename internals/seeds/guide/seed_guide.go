package guide

import (
	"log"

	"gorm.io/gorm"

	"pteguide_backend/internals/constants"
	contentModel "pteguide_backend/internals/features/guide/content/model"
	sectionModel "pteguide_backend/internals/features/guide/section/model"
)

// SeedSections creates the exam sections. Idempotent; existing rows are left
// untouched.
func SeedSections(db *gorm.DB) {
	sections := []sectionModel.SectionModel{
		{
			Name:        constants.SectionSpeaking,
			Title:       "Speaking",
			Description: "PTE Speaking section preparation materials including practice questions, tips, and video tutorials.",
		},
		{
			Name:        constants.SectionWriting,
			Title:       "Writing",
			Description: "PTE Writing section resources with sample essays, templates, and writing strategies.",
		},
		{
			Name:        constants.SectionReading,
			Title:       "Reading",
			Description: "PTE Reading section materials including comprehension passages, question types, and techniques.",
		},
		{
			Name:        constants.SectionListening,
			Title:       "Listening",
			Description: "PTE Listening section practice with audio materials, note-taking tips, and response strategies.",
		},
		{
			Name:        constants.SectionCollaborative,
			Title:       "Collaborative",
			Description: "Shared study space: whiteboard sessions and group practice materials.",
		},
	}

	for i := range sections {
		row := sections[i]
		if err := db.Where("name = ?", row.Name).FirstOrCreate(&row).Error; err != nil {
			log.Printf("seed section %q failed: %v", row.Name, err)
		}
	}
	log.Println("seeded sections")
}

// SeedTags creates the default tag set: difficulty levels, content categories,
// question types, PTE task types and priority markers.
func SeedTags(db *gorm.DB) {
	tags := []contentModel.TagModel{
		// difficulty levels
		{Name: "Beginner", Color: "#28a745", Description: "Content suitable for beginners"},
		{Name: "Intermediate", Color: "#ffc107", Description: "Content for intermediate level"},
		{Name: "Advanced", Color: "#dc3545", Description: "Advanced level content"},

		// content categories
		{Name: "Tips", Color: "#17a2b8", Description: "Tips and strategies"},
		{Name: "Practice", Color: "#6f42c1", Description: "Practice exercises"},
		{Name: "Templates", Color: "#fd7e14", Description: "Templates and formats"},
		{Name: "Examples", Color: "#20c997", Description: "Sample answers and examples"},
		{Name: "Vocabulary", Color: "#e83e8c", Description: "Vocabulary building"},
		{Name: "Grammar", Color: "#6c757d", Description: "Grammar rules and usage"},

		// question types
		{Name: "Multiple Choice", Color: "#007bff", Description: "Multiple choice questions"},
		{Name: "Fill Blanks", Color: "#28a745", Description: "Fill in the blanks exercises"},
		{Name: "Essay", Color: "#dc3545", Description: "Essay writing"},
		{Name: "Summary", Color: "#ffc107", Description: "Summary tasks"},

		// speaking tasks
		{Name: "Personal Introduction", Color: "#6f42c1", Description: "Speaking personal introduction"},
		{Name: "Read Aloud", Color: "#007bff", Description: "Reading aloud tasks"},
		{Name: "Repeat Sentence", Color: "#28a745", Description: "Sentence repetition tasks"},
		{Name: "Describe Image", Color: "#ffc107", Description: "Image description tasks"},
		{Name: "Re-tell Lecture", Color: "#dc3545", Description: "Lecture retelling tasks"},
		{Name: "Answer Short Question", Color: "#6c757d", Description: "Short answer questions"},
		{Name: "Group Discussion", Color: "#28a745", Description: "Summarize group discussion"},
		{Name: "Respond to Situation", Color: "#17a2b8", Description: "Respond appropriately to situations"},

		// writing tasks
		{Name: "Summarize Written Text", Color: "#fd7e14", Description: "Written text summarization"},
		{Name: "Essay Writing", Color: "#e83e8c", Description: "Essay writing tasks"},

		// reading tasks
		{Name: "Single Answer", Color: "#20c997", Description: "Multiple choice single answer"},
		{Name: "Multiple Answers", Color: "#6f42c1", Description: "Multiple choice multiple answers"},
		{Name: "Re-order Paragraphs", Color: "#fd7e14", Description: "Paragraph reordering"},
		{Name: "Reading Fill Blanks", Color: "#dc3545", Description: "Reading fill in the blanks"},
		{Name: "Reading & Writing Fill Blanks", Color: "#ffc107", Description: "Combined reading and writing fill blanks"},

		// listening tasks
		{Name: "Summarize Spoken Text", Color: "#007bff", Description: "Spoken text summarization"},
		{Name: "Listening Fill Blanks", Color: "#28a745", Description: "Listening fill in the blanks"},
		{Name: "Highlight Correct Summary", Color: "#17a2b8", Description: "Select correct summary"},
		{Name: "Select Missing Word", Color: "#6c757d", Description: "Choose the missing final word"},
		{Name: "Highlight Incorrect Words", Color: "#dc3545", Description: "Identify words that differ from audio"},
		{Name: "Write from Dictation", Color: "#e83e8c", Description: "Type exactly what you hear"},

		// priority markers
		{Name: "Important", Color: "#ff6b6b", Description: "Important content to focus on"},
		{Name: "Quick Review", Color: "#4ecdc4", Description: "Quick review materials"},
	}

	for i := range tags {
		row := tags[i]
		if err := db.Where("name = ?", row.Name).FirstOrCreate(&row).Error; err != nil {
			log.Printf("seed tag %q failed: %v", row.Name, err)
		}
	}
	log.Println("seeded tags")
}

// SeedSampleContent creates a couple of starter items so a fresh install is
// not empty. Keyed on (section, title).
func SeedSampleContent(db *gorm.DB) {
	samples := []struct {
		sectionName string
		content     contentModel.ContentModel
	}{
		{
			sectionName: constants.SectionSpeaking,
			content: contentModel.ContentModel{
				Title:       "PTE Speaking Overview",
				ContentType: constants.ContentTypeText,
				Description: "Introduction to PTE Speaking section",
				TextContent: "The PTE Speaking section tests your ability to understand and speak English in academic settings.\n\n" +
					"Key components:\n" +
					"1. Personal Introduction (not scored)\n" +
					"2. Read Aloud\n" +
					"3. Repeat Sentence\n" +
					"4. Describe Image\n" +
					"5. Re-tell Lecture\n" +
					"6. Answer Short Question\n\n" +
					"Tips for success:\n" +
					"- Speak clearly and at a steady pace\n" +
					"- Use proper pronunciation and intonation\n" +
					"- Practice with a variety of topics\n" +
					"- Time management is crucial",
				IsActive: true,
			},
		},
		{
			sectionName: constants.SectionWriting,
			content: contentModel.ContentModel{
				Title:       "Essay Writing Template",
				ContentType: constants.ContentTypeNote,
				Description: "Standard template for PTE essays",
				TextContent: "PTE Essay Writing Template:\n\n" +
					"Introduction (50-75 words):\n" +
					"- Hook sentence\n" +
					"- Background information\n" +
					"- Thesis statement\n\n" +
					"Body Paragraph 1 (75-100 words):\n" +
					"- Topic sentence\n" +
					"- Supporting details\n" +
					"- Examples\n" +
					"- Concluding sentence\n\n" +
					"Body Paragraph 2 (75-100 words):\n" +
					"- Topic sentence\n" +
					"- Supporting details\n" +
					"- Examples\n" +
					"- Concluding sentence\n\n" +
					"Conclusion (50-75 words):\n" +
					"- Restate thesis\n" +
					"- Summarize main points\n" +
					"- Final thought\n\n" +
					"Remember: Aim for 200-300 words total",
				IsActive: true,
			},
		},
	}

	for _, sample := range samples {
		var section sectionModel.SectionModel
		if err := db.Where("name = ?", sample.sectionName).First(&section).Error; err != nil {
			log.Printf("seed content %q: section %q missing: %v", sample.content.Title, sample.sectionName, err)
			continue
		}
		row := sample.content
		row.SectionID = section.ID
		if err := db.Where("section_id = ? AND title = ?", section.ID, row.Title).
			FirstOrCreate(&row).Error; err != nil {
			log.Printf("seed content %q failed: %v", row.Title, err)
		}
	}
	log.Println("seeded sample content")
}

package constants

// Exam section names. The set is closed; the section rows themselves live in
// the database and are seeded on first boot.
const (
	SectionSpeaking      = "speaking"
	SectionWriting       = "writing"
	SectionReading       = "reading"
	SectionListening     = "listening"
	SectionCollaborative = "collaborative"
)

var SectionNames = []string{
	SectionSpeaking,
	SectionWriting,
	SectionReading,
	SectionListening,
	SectionCollaborative,
}

// Content types. content_type decides which of youtube_url/text_content the
// item semantically carries; storage does not enforce it.
const (
	ContentTypeVideo = "video"
	ContentTypeNote  = "note"
	ContentTypeText  = "text"
)

// DifficultyLevels is the precedence order for the derived difficulty of a
// content item: the first level present among its tags wins.
var DifficultyLevels = []string{"Beginner", "Intermediate", "Advanced"}

const DefaultWhiteboardTitle = "Untitled Whiteboard"

// EditScope is the subject claim carried by the edit capability token.
const EditScope = "content:edit"

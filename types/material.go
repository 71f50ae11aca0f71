package types

// Material holds one uploaded document's extracted text plus anything
// generated from it later. Content is set once at upload time. Notes stays
// nil until the first notes generation. Quiz holds either the parsed
// question array or a raw-text fallback map when the model output is not
// valid JSON.
type Material struct {
	Filename string
	Content  string
	Notes    *string
	Quiz     any
}

// MaterialSummary is the listing view of a material. It deliberately never
// carries the content itself.
type MaterialSummary struct {
	MaterialID string `json:"material_id"`
	Filename   string `json:"filename"`
	HasNotes   bool   `json:"has_notes"`
	HasQuiz    bool   `json:"has_quiz"`
}

// QuizQuestion is the shape the quiz prompt asks the model for. Parsing is
// best-effort, so stored quizzes are not guaranteed to match it.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

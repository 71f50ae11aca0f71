package types

type NotesRequest struct {
	MaterialID string `json:"material_id"`
}

type QuizRequest struct {
	MaterialID   string `json:"material_id"`
	NumQuestions int    `json:"num_questions"`
}

type ChatRequest struct {
	Message    string `json:"message"`
	MaterialID string `json:"material_id"`
}

package types

type UploadResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	MaterialID string `json:"material_id"`
	Filename   string `json:"filename"`
}

type NotesResponse struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type QuizResponse struct {
	Status string `json:"status"`
	Quiz   any    `json:"quiz"`
}

type ChatResponse struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}

type MaterialListResponse struct {
	Materials []MaterialSummary `json:"materials"`
}

type MaterialDetailResponse struct {
	MaterialID     string  `json:"material_id"`
	Filename       string  `json:"filename"`
	ContentPreview string  `json:"content_preview"`
	Notes          *string `json:"notes"`
	Quiz           any     `json:"quiz"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

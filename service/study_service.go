package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tieubaoca/study-buddy-be/repository"
	"github.com/tieubaoca/study-buddy-be/types"
	"github.com/tieubaoca/study-buddy-be/utils"
)

const (
	defaultNumQuestions = 5
	previewLimit        = 500
)

// StudyService orchestrates uploads and everything generated from them.
// The AI service may be nil when no API key was configured at startup;
// upload/list/get keep working in that state, generation does not.
type StudyService struct {
	repo      repository.MaterialRepo
	extractor TextExtractor
	ai        AIService
}

func NewStudyService(repo repository.MaterialRepo, extractor TextExtractor, ai AIService) *StudyService {
	return &StudyService{
		repo:      repo,
		extractor: extractor,
		ai:        ai,
	}
}

// UploadPDF extracts text from the uploaded bytes and stores a fresh
// material record. Re-uploading a file whose name derives to the same id
// replaces the prior record, generated notes and quiz included.
func (s *StudyService) UploadPDF(filename string, data []byte) (*types.UploadResponse, error) {
	if !utils.HasPDFExtension(filename) {
		return nil, types.NewInvalidInput("Only PDF files are allowed")
	}

	text, err := s.extractor.ExtractText(data)
	if err != nil {
		return nil, types.NewInternalError(fmt.Sprintf("Error processing PDF: %v", err))
	}
	if strings.TrimSpace(text) == "" {
		return nil, types.NewInvalidInput("No text content found in PDF")
	}

	materialID := utils.MaterialIDFromFilename(filename)
	s.repo.Save(materialID, types.Material{
		Filename: filename,
		Content:  text,
	})

	return &types.UploadResponse{
		Status:     "success",
		Message:    "PDF uploaded successfully",
		MaterialID: materialID,
		Filename:   filename,
	}, nil
}

// GenerateNotes asks the model for study notes over the material's content
// and stores the raw response verbatim. Regeneration overwrites.
func (s *StudyService) GenerateNotes(ctx context.Context, materialID string) (*types.NotesResponse, error) {
	material, ok := s.repo.Get(materialID)
	if !ok {
		return nil, types.NewNotFound("Material not found")
	}
	if s.ai == nil {
		return nil, types.NewServiceUnavailable("AI service not configured")
	}

	notes, err := s.ai.GenerateContent(ctx, BuildNotesPrompt(material.Content))
	if err != nil {
		return nil, types.NewInternalError(fmt.Sprintf("Error generating notes: %v", err))
	}

	material.Notes = &notes
	s.repo.Save(materialID, material)

	return &types.NotesResponse{
		Status: "success",
		Notes:  notes,
	}, nil
}

// GenerateQuiz asks the model for numQuestions multiple-choice questions
// and stores whatever ParseQuizResponse makes of the reply. A reply the
// model fenced or mangled never fails the request.
func (s *StudyService) GenerateQuiz(ctx context.Context, materialID string, numQuestions int) (*types.QuizResponse, error) {
	material, ok := s.repo.Get(materialID)
	if !ok {
		return nil, types.NewNotFound("Material not found")
	}
	if s.ai == nil {
		return nil, types.NewServiceUnavailable("AI service not configured")
	}

	if numQuestions <= 0 {
		numQuestions = defaultNumQuestions
	}

	raw, err := s.ai.GenerateContent(ctx, BuildQuizPrompt(material.Content, numQuestions))
	if err != nil {
		return nil, types.NewInternalError(fmt.Sprintf("Error generating quiz: %v", err))
	}

	quiz := ParseQuizResponse(raw)
	material.Quiz = quiz
	s.repo.Save(materialID, material)

	return &types.QuizResponse{
		Status: "success",
		Quiz:   quiz,
	}, nil
}

// Chat answers a student question, grounded in a material's content when a
// resolvable id is supplied. An unknown id is not an error; the tutor just
// answers without material context.
func (s *StudyService) Chat(ctx context.Context, message, materialID string) (*types.ChatResponse, error) {
	if s.ai == nil {
		return nil, types.NewServiceUnavailable("AI service not configured")
	}

	content := ""
	if materialID != "" {
		if material, ok := s.repo.Get(materialID); ok {
			content = material.Content
		}
	}

	answer, err := s.ai.GenerateContent(ctx, BuildChatPrompt(content, message))
	if err != nil {
		return nil, types.NewInternalError(fmt.Sprintf("Error chatting with tutor: %v", err))
	}

	return &types.ChatResponse{
		Status:   "success",
		Response: answer,
	}, nil
}

func (s *StudyService) ListMaterials() *types.MaterialListResponse {
	return &types.MaterialListResponse{
		Materials: s.repo.List(),
	}
}

// GetMaterial returns the detail view. The preview is always the first 500
// characters plus "...", even when the content is shorter.
func (s *StudyService) GetMaterial(materialID string) (*types.MaterialDetailResponse, error) {
	material, ok := s.repo.Get(materialID)
	if !ok {
		return nil, types.NewNotFound("Material not found")
	}

	return &types.MaterialDetailResponse{
		MaterialID:     materialID,
		Filename:       material.Filename,
		ContentPreview: TruncateRunes(material.Content, previewLimit) + "...",
		Notes:          material.Notes,
		Quiz:           material.Quiz,
	}, nil
}

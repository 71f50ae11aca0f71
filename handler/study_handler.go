package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	services "github.com/tieubaoca/study-buddy-be/service"
	"github.com/tieubaoca/study-buddy-be/types"
)

// StudyHandler serves the two generation endpoints: study notes and quiz.
type StudyHandler struct {
	studyService *services.StudyService
}

func NewStudyHandler(studyService *services.StudyService) *StudyHandler {
	return &StudyHandler{
		studyService: studyService,
	}
}

// HandleGenerateNotes reads the material id from the query string, falling
// back to a JSON body {"material_id": ...}.
func (h *StudyHandler) HandleGenerateNotes(c *gin.Context) {
	materialID := c.Query("material_id")
	if materialID == "" {
		var req types.NotesRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			materialID = req.MaterialID
		}
	}

	res, err := h.studyService.GenerateNotes(c.Request.Context(), materialID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *StudyHandler) HandleGenerateQuiz(c *gin.Context) {
	var req types.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Detail: "Invalid request body: " + err.Error(),
		})
		return
	}

	res, err := h.studyService.GenerateQuiz(c.Request.Context(), req.MaterialID, req.NumQuestions)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

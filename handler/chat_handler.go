package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	services "github.com/tieubaoca/study-buddy-be/service"
	"github.com/tieubaoca/study-buddy-be/types"
)

type ChatHandler struct {
	studyService *services.StudyService
}

func NewChatHandler(studyService *services.StudyService) *ChatHandler {
	return &ChatHandler{
		studyService: studyService,
	}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Detail: "Invalid request body: " + err.Error(),
		})
		return
	}

	res, err := h.studyService.Chat(c.Request.Context(), req.Message, req.MaterialID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	services "github.com/tieubaoca/study-buddy-be/service"
	"github.com/tieubaoca/study-buddy-be/types"
)

type UploadHandler struct {
	studyService *services.StudyService
}

func NewUploadHandler(studyService *services.StudyService) *UploadHandler {
	return &UploadHandler{
		studyService: studyService,
	}
}

// HandleUpload accepts a multipart "file" field, extracts its text and
// stores the material.
func (h *UploadHandler) HandleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Detail: "Invalid file",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Detail: "Failed to read uploaded file: " + err.Error(),
		})
		return
	}

	res, err := h.studyService.UploadPDF(header.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	services "github.com/tieubaoca/study-buddy-be/service"
)

// MaterialHandler serves the read-only material endpoints.
type MaterialHandler struct {
	studyService *services.StudyService
}

func NewMaterialHandler(studyService *services.StudyService) *MaterialHandler {
	return &MaterialHandler{
		studyService: studyService,
	}
}

func (h *MaterialHandler) HandleListMaterials(c *gin.Context) {
	c.JSON(http.StatusOK, h.studyService.ListMaterials())
}

func (h *MaterialHandler) HandleGetMaterial(c *gin.Context) {
	res, err := h.studyService.GetMaterial(c.Param("material_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

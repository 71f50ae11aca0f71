package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/study-buddy-be/types"
)

// respondError renders any service error as {"detail": "<message>"} with
// its mapped HTTP status.
func respondError(c *gin.Context, err error) {
	apiErr := types.AsAPIError(err)
	c.JSON(apiErr.Status, types.ErrorResponse{Detail: apiErr.Message})
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/services"
	"bookstore/pkg/utils"
)

// multipart framing allowance on top of the file size limit
const formOverhead = 64 << 10

type UploadController struct {
	uploadService services.UploadServiceInterface
}

func NewUploadController(uploadService services.UploadServiceInterface) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// UploadBookCover godoc
// @Summary Upload a book cover image
// @Description Accepts jpeg, png, webp or gif up to the configured size
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Cover image"
// @Success 201 {object} response_models.UploadResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/dashboard/uploads/book-cover [post]
func (u *UploadController) UploadBookCover(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, u.uploadService.MaxBytes()+formOverhead)

	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			utils.RespondError(c, http.StatusBadRequest, "File too large")
		default:
			utils.RespondError(c, http.StatusBadRequest, "No file uploaded")
		}
		return
	}

	resp, err := u.uploadService.SaveBookCover(c.Request.Context(), file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, resp)
}

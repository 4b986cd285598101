package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"childcare-app-server/internal/apperr"
	"childcare-app-server/internal/middleware"
	"childcare-app-server/internal/models"
	"childcare-app-server/internal/repository"
	"childcare-app-server/internal/utils"
)

// multipartOverhead is the allowance for form boundaries and headers on top
// of the file itself.
const multipartOverhead = 1 << 20

// ImageHandler stores and serves uploaded images.
type ImageHandler struct {
	Images   repository.ImageRepository
	BaseURL  string
	MaxBytes int64
}

// NewImageHandler creates a new ImageHandler. Image URLs are built as
// baseURL + "/image/" + id.
func NewImageHandler(images repository.ImageRepository, baseURL string, maxBytes int64) *ImageHandler {
	return &ImageHandler{
		Images:   images,
		BaseURL:  strings.TrimRight(baseURL, "/"),
		MaxBytes: maxBytes,
	}
}

// UploadedImage is the response of a successful upload.
type UploadedImage struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// URL returns the public address of an image.
func (h *ImageHandler) URL(id string) string {
	return h.BaseURL + "/image/" + id
}

// UploadImage accepts a multipart "file" field holding an image.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		utils.Fail(c, apperr.NewUnauthenticated(utils.MsgAuthRequired))
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBytes+multipartOverhead)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.BadRequest(c, utils.MsgFileTooLarge)
			return
		}
		utils.BadRequest(c, utils.MsgFileRequired)
		return
	}
	if fileHeader.Size > h.MaxBytes {
		utils.BadRequest(c, utils.MsgFileTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.Fail(c, apperr.NewInternal(errors.Wrap(err, "open upload"), utils.MsgInternal))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.MaxBytes+1))
	if err != nil {
		utils.Fail(c, apperr.NewInternal(errors.Wrap(err, "read upload"), utils.MsgInternal))
		return
	}
	if int64(len(data)) > h.MaxBytes {
		utils.BadRequest(c, utils.MsgFileTooLarge)
		return
	}
	if len(data) == 0 {
		utils.BadRequest(c, utils.MsgFileRequired)
		return
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		utils.BadRequest(c, utils.MsgNotAnImage)
		return
	}

	img := models.Image{
		UserID:      user.ID,
		FileName:    fileName(fileHeader.Filename, mt.Extension()),
		ContentType: mt.String(),
		Size:        int64(len(data)),
		Data:        data,
	}
	if err := h.Images.Create(c.Request.Context(), &img); err != nil {
		utils.Fail(c, apperr.NewInternal(err, utils.MsgInternal))
		return
	}

	utils.Success(c, utils.MsgImageUploaded, UploadedImage{
		ID:          img.ID,
		URL:         h.URL(img.ID),
		FileName:    img.FileName,
		ContentType: img.ContentType,
		Size:        img.Size,
	})
}

// fileName keeps the base name of the uploaded file, falling back to a
// generic name with the detected extension.
func fileName(name, ext string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return "image" + ext
	}
	return name
}

// ServeImage writes the stored bytes. It is public so image tags can load it.
func (h *ImageHandler) ServeImage(c *gin.Context) {
	img, err := h.Images.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, repoError(err, utils.MsgImageNotFound))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", img.FileName))
	c.Header("Cache-Control", "private, max-age=86400")
	c.Data(http.StatusOK, img.ContentType, img.Data)
}

// DeleteImage removes the guarded image.
func (h *ImageHandler) DeleteImage(c *gin.Context) {
	img, ok := middleware.GetImage(c)
	if !ok {
		utils.Fail(c, apperr.NewNotFound(utils.MsgImageNotFound))
		return
	}
	if err := h.Images.Delete(c.Request.Context(), img.ID); err != nil {
		utils.Fail(c, repoError(err, utils.MsgImageNotFound))
		return
	}
	utils.Success(c, utils.MsgImageDeleted, nil)
}

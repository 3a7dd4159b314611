package handlers

import (
	"mime/multipart"
	"path/filepath"

	"videotube/internal/domain/dto"
	apierrors "videotube/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ok(c *fiber.Ctx, data interface{}, message string) error {
	return c.JSON(dto.APIResponse{
		StatusCode: fiber.StatusOK,
		Data:       data,
		Message:    message,
	})
}

func created(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusCreated).JSON(dto.APIResponse{
		StatusCode: fiber.StatusCreated,
		Data:       data,
		Message:    message,
	})
}

// stageUpload copies a multipart file into the staging directory under a
// unique name and returns its path. A missing optional field yields "".
func stageUpload(c *fiber.Ctx, field, tempDir string, required bool) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if required {
			return "", apierrors.Validation(field + " file is required")
		}
		return "", nil
	}
	return stageFile(c, fileHeader, tempDir)
}

func stageFile(c *fiber.Ctx, fileHeader *multipart.FileHeader, tempDir string) (string, error) {
	dst := filepath.Join(tempDir, uuid.NewString()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveFile(fileHeader, dst); err != nil {
		return "", apierrors.Internal(err)
	}
	return dst, nil
}

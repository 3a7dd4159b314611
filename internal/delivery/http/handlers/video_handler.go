package handlers

import (
	"videotube/internal/delivery/http/middleware"
	"videotube/internal/domain/dto"
	"videotube/internal/usecases"
	"videotube/pkg/config"
	apierrors "videotube/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type VideoHandler struct {
	videoService usecases.VideoService
	uploadCfg    config.UploadConfig
}

func NewVideoHandler(videoService usecases.VideoService, uploadCfg config.UploadConfig) *VideoHandler {
	return &VideoHandler{videoService: videoService, uploadCfg: uploadCfg}
}

// Feed
//
// @Summary      List published videos
// @Description  Paginated feed with optional text search, owner filter and sorting
// @Tags         Videos
// @Produce      json
// @Param        page    query  int    false "Page (1-based)"
// @Param        limit   query  int    false "Page size"
// @Param        query   query  string false "Title/description search"
// @Param        userId  query  string false "Filter by owner"
// @Param        sortBy  query  string false "createdAt, views, duration or title"
// @Param        sortType query string false "asc or desc"
// @Success      200  {object}  dto.APIResponse{data=dto.Page}
// @Router       /videos [get]
func (h *VideoHandler) Feed(c *fiber.Ctx) error {
	params := dto.FeedParams{
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 10),
		Query:    c.Query("query"),
		OwnerID:  c.Query("userId"),
		SortBy:   c.Query("sortBy", "createdAt"),
		SortDesc: c.Query("sortType", "desc") != "asc",
	}

	page, err := h.videoService.Feed(params)
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, page, "videos fetched")
}

// Create
//
// @Summary      Upload a video
// @Description  Stores the video unpublished; publish it with the toggle endpoint
// @Tags         Videos
// @Accept       multipart/form-data
// @Produce      json
// @Param        title        formData  string true "Title"
// @Param        description  formData  string false "Description"
// @Param        videoFile    formData  file   true "Video file"
// @Param        thumbnail    formData  file   true "Thumbnail image"
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /videos [post]
func (h *VideoHandler) Create(c *fiber.Ctx) error {
	videoPath, err := stageUpload(c, "videoFile", h.uploadCfg.TempDir, true)
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	thumbnailPath, err := stageUpload(c, "thumbnail", h.uploadCfg.TempDir, true)
	if err != nil {
		return apierrors.HandleError(c, err)
	}

	video, err := h.videoService.Create(
		c.Context(),
		middleware.Viewer(c),
		c.FormValue("title"),
		c.FormValue("description"),
		videoPath,
		thumbnailPath,
	)
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return created(c, video, "video uploaded")
}

// Detail
//
// @Summary      Video detail
// @Description  Joined view with counts and viewer flags; authenticated views count
// @Tags         Videos
// @Produce      json
// @Param        videoId  path  string true "Video ID"
// @Success      200  {object}  dto.APIResponse{data=dto.VideoDetail}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /videos/{videoId} [get]
func (h *VideoHandler) Detail(c *fiber.Ctx) error {
	detail, err := h.videoService.Detail(c.Params("videoId"), middleware.Viewer(c))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, detail, "video fetched")
}

// Update
//
// @Summary      Update a video
// @Description  Owner-only; title, description and thumbnail are each optional
// @Tags         Videos
// @Accept       multipart/form-data
// @Produce      json
// @Param        videoId      path      string true "Video ID"
// @Param        title        formData  string false "Title"
// @Param        description  formData  string false "Description"
// @Param        thumbnail    formData  file   false "Replacement thumbnail"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /videos/{videoId} [patch]
func (h *VideoHandler) Update(c *fiber.Ctx) error {
	thumbnailPath, err := stageUpload(c, "thumbnail", h.uploadCfg.TempDir, false)
	if err != nil {
		return apierrors.HandleError(c, err)
	}

	req := dto.UpdateVideoRequest{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}
	video, err := h.videoService.Update(c.Context(), c.Params("videoId"), middleware.Viewer(c), req, thumbnailPath)
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, video, "video updated")
}

// Delete
//
// @Summary      Delete a video
// @Description  Owner-only; removes dependent rows and queues asset destruction
// @Tags         Videos
// @Produce      json
// @Param        videoId  path  string true "Video ID"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /videos/{videoId} [delete]
func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	if err := h.videoService.Delete(c.Context(), c.Params("videoId"), middleware.Viewer(c)); err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, nil, "video deleted")
}

// TogglePublish
//
// @Summary      Toggle publish state
// @Tags         Videos
// @Produce      json
// @Param        videoId  path  string true "Video ID"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /videos/{videoId}/toggle-publish [patch]
func (h *VideoHandler) TogglePublish(c *fiber.Ctx) error {
	published, err := h.videoService.TogglePublish(c.Params("videoId"), middleware.Viewer(c))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, fiber.Map{"isPublished": published}, "publish state toggled")
}

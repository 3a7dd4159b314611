package handlers

import (
	"time"

	"videotube/internal/delivery/http/middleware"
	"videotube/internal/domain/dto"
	"videotube/internal/usecases"
	"videotube/pkg/config"
	apierrors "videotube/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService usecases.UserService
	uploadCfg   config.UploadConfig
	authCfg     config.AuthConfig
}

func NewUserHandler(userService usecases.UserService, uploadCfg config.UploadConfig, authCfg config.AuthConfig) *UserHandler {
	return &UserHandler{userService: userService, uploadCfg: uploadCfg, authCfg: authCfg}
}

// Register
//
// @Summary      Register a new user
// @Description  Creates an account; avatar image is required, cover image optional
// @Tags         Users
// @Accept       multipart/form-data
// @Produce      json
// @Param        username    formData  string true  "Username"
// @Param        email       formData  string true  "Email"
// @Param        fullName    formData  string false "Full name"
// @Param        password    formData  string true  "Password"
// @Param        avatar      formData  file   true  "Avatar image"
// @Param        coverImage  formData  file   false "Cover image"
// @Success      201  {object}  dto.APIResponse{data=dto.UserView}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	req := dto.RegisterRequest{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		FullName: c.FormValue("fullName"),
		Password: c.FormValue("password"),
	}

	avatarPath, err := stageUpload(c, "avatar", h.uploadCfg.TempDir, true)
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	coverPath, err := stageUpload(c, "coverImage", h.uploadCfg.TempDir, false)
	if err != nil {
		return apierrors.HandleError(c, err)
	}

	user, err := h.userService.Register(c.Context(), req, avatarPath, coverPath)
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return created(c, user, "user registered")
}

// Login
//
// @Summary      Log in
// @Description  Authenticates by username or email and sets token cookies
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LoginRequest true "Credentials"
// @Success      200      {object}  dto.APIResponse{data=dto.LoginResponse}
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apierrors.HandleError(c, apierrors.Validation("invalid request body"))
	}

	resp, err := h.userService.Login(req)
	if err != nil {
		return apierrors.HandleError(c, err)
	}

	h.setTokenCookies(c, resp.AccessToken, resp.RefreshToken)
	return ok(c, resp, "logged in")
}

// Logout
//
// @Summary      Log out
// @Description  Revokes the refresh token and clears token cookies
// @Tags         Users
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /users/logout [post]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	if err := h.userService.Logout(middleware.Viewer(c)); err != nil {
		return apierrors.HandleError(c, err)
	}
	h.clearTokenCookies(c)
	return ok(c, nil, "logged out")
}

// Refresh
//
// @Summary      Refresh tokens
// @Description  Rotates the access/refresh pair using the stored refresh token
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      dto.RefreshRequest false "Refresh token (cookie also accepted)"
// @Success      200      {object}  dto.APIResponse{data=dto.TokenPair}
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /users/refresh-token [post]
func (h *UserHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	_ = c.BodyParser(&req)
	if req.RefreshToken == "" {
		req.RefreshToken = c.Cookies("refreshToken")
	}

	pair, err := h.userService.Refresh(req.RefreshToken)
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	h.setTokenCookies(c, pair.AccessToken, pair.RefreshToken)
	return ok(c, pair, "tokens refreshed")
}

// Me
//
// @Summary      Current user
// @Tags         Users
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.UserView}
// @Failure      401  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.userService.Me(middleware.Viewer(c))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, user, "current user")
}

// History
//
// @Summary      Watch history
// @Description  Most recently watched videos first, deduplicated
// @Tags         Users
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.VideoSummary}
// @Failure      401  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /users/history [get]
func (h *UserHandler) History(c *fiber.Ctx) error {
	history, err := h.userService.History(middleware.Viewer(c))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, history, "watch history")
}

func (h *UserHandler) setTokenCookies(c *fiber.Ctx, access, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    access,
		Expires:  time.Now().Add(h.authCfg.AccessTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    refresh,
		Expires:  time.Now().Add(h.authCfg.RefreshTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *UserHandler) clearTokenCookies(c *fiber.Ctx) {
	for _, name := range []string{"accessToken", "refreshToken"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteStrictMode,
		})
	}
}

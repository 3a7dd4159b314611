package usecases

import (
	"context"
	"strings"

	"videotube/internal/domain/dto"
	"videotube/internal/domain/entities"
	"videotube/internal/domain/repositories"
	"videotube/internal/infrastructure/processor"
	"videotube/pkg/config"
	"videotube/pkg/constants"
	apierrors "videotube/pkg/errors"
	"videotube/pkg/helper"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest, avatarPath, coverPath string) (*dto.UserView, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(userID string) error
	Refresh(refreshToken string) (*dto.TokenPair, error)
	Me(userID string) (*dto.UserView, error)
	History(userID string) ([]dto.VideoSummary, error)
}

type userService struct {
	users   repositories.UserRepository
	storage repositories.MediaStorage
	auth    config.AuthConfig
}

func NewUserService(users repositories.UserRepository, storage repositories.MediaStorage, auth config.AuthConfig) UserService {
	return &userService{users: users, storage: storage, auth: auth}
}

func toUserView(user *entities.User) dto.UserView {
	return dto.UserView{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
		CreatedAt:  user.CreatedAt,
	}
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest, avatarPath, coverPath string) (*dto.UserView, error) {
	if !helper.RequiredFields(req.Username, req.Email, req.Password) {
		return nil, apierrors.Validation("username, email and password are required")
	}
	if avatarPath == "" {
		return nil, apierrors.Validation("avatar file is required")
	}
	if !helper.IsImageFile(avatarPath) {
		return nil, apierrors.Validation("avatar must be an image")
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	exists, err := s.users.ExistsByUsernameOrEmail(username, req.Email)
	if err != nil {
		return nil, apierrors.Internal(err)
	}
	if exists {
		return nil, apierrors.Conflict("user with this username or email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierrors.Internal(err)
	}

	avatarURL, err := s.uploadImage(ctx, avatarPath, processor.AvatarSize, constants.FolderAvatars)
	if err != nil {
		return nil, err
	}

	var coverURL string
	if coverPath != "" {
		coverURL, err = s.uploadImage(ctx, coverPath, processor.CoverSize, constants.FolderCovers)
		if err != nil {
			return nil, err
		}
	}

	user := &entities.User{
		ID:         uuid.NewString(),
		Username:   username,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:   req.FullName,
		Password:   string(hash),
		Avatar:     avatarURL,
		CoverImage: coverURL,
	}
	if err := s.users.Create(user); err != nil {
		return nil, apierrors.Internal(err)
	}

	view := toUserView(user)
	return &view, nil
}

func (s *userService) uploadImage(ctx context.Context, localPath string, size processor.ResizeOption, folder string) (string, error) {
	normalized, err := processor.NormalizeImage(localPath, size)
	if err != nil {
		return "", apierrors.Validation("could not process image file")
	}
	result, err := s.storage.Upload(ctx, normalized, folder)
	if err != nil {
		return "", apierrors.Upstream("media host rejected the upload", err)
	}
	return result.URL, nil
}

func (s *userService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	if !helper.AnyField(req.Username, req.Email) {
		return nil, apierrors.Validation("username or email is required")
	}

	user, err := s.users.GetByUsernameOrEmail(strings.ToLower(req.Username), strings.ToLower(req.Email))
	if err != nil {
		return nil, lookupErr(err, "user")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apierrors.Unauthorized("invalid credentials")
	}

	pair, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{User: toUserView(user), TokenPair: *pair}, nil
}

func (s *userService) issueTokens(userID string) (*dto.TokenPair, error) {
	access, err := SignAccessToken(s.auth, userID)
	if err != nil {
		return nil, apierrors.Internal(err)
	}
	refresh, err := SignRefreshToken(s.auth, userID)
	if err != nil {
		return nil, apierrors.Internal(err)
	}
	if err := s.users.UpdateRefreshToken(userID, refresh); err != nil {
		return nil, apierrors.Internal(err)
	}
	return &dto.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *userService) Logout(userID string) error {
	if err := s.users.UpdateRefreshToken(userID, ""); err != nil {
		return apierrors.Internal(err)
	}
	return nil
}

// Refresh rotates the pair: the presented token must both verify and match
// the one stored on the user record.
func (s *userService) Refresh(refreshToken string) (*dto.TokenPair, error) {
	if refreshToken == "" {
		return nil, apierrors.Unauthorized("refresh token is required")
	}
	claims, err := ParseRefreshToken(s.auth, refreshToken)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, apierrors.Unauthorized("invalid refresh token")
	}
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, apierrors.Unauthorized("refresh token has been revoked")
	}
	return s.issueTokens(user.ID)
}

func (s *userService) Me(userID string) (*dto.UserView, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, lookupErr(err, "user")
	}
	view := toUserView(user)
	return &view, nil
}

func (s *userService) History(userID string) ([]dto.VideoSummary, error) {
	history, err := s.users.WatchHistory(userID)
	if err != nil {
		return nil, apierrors.Internal(err)
	}
	return history, nil
}

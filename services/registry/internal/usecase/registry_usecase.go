package usecase

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"solraise/pkg/logger"
	"solraise/pkg/metrics"
	"solraise/pkg/rewards"
	"solraise/pkg/s3"
	"solraise/services/registry/internal/entity"
	"solraise/services/registry/internal/repo/persistent"
)

var (
	ErrWalletRegistered = errors.New("this wallet is already registered")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrUserNotFound     = errors.New("user not found")
)

// ValidationError reports a malformed registration field. The reason is
// safe to return to the caller verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

type RegistryUseCase interface {
	Register(address, username, displayName, bio string) (*entity.User, error)
	CheckRegistration(address string) (*entity.User, error)
	ListActiveUsers() ([]*entity.User, error)
	UploadAvatar(address string, fileReader io.Reader, fileKey string, contentType string) (*entity.User, error)
}

type registryUseCase struct {
	userRepo persistent.UserRepository
	s3Client *s3.Client
	logger   *logger.Logger
}

func NewRegistryUseCase(userRepo persistent.UserRepository, s3Client *s3.Client, logger *logger.Logger) RegistryUseCase {
	return &registryUseCase{
		userRepo: userRepo,
		s3Client: s3Client,
		logger:   logger,
	}
}

func (uc *registryUseCase) Register(address, username, displayName, bio string) (*entity.User, error) {
	if address == "" || username == "" || displayName == "" {
		return nil, &ValidationError{Reason: "missing required fields"}
	}

	if len(username) < 3 || len(username) > 30 {
		return nil, &ValidationError{Reason: "username must be 3-30 characters"}
	}

	if !usernamePattern.MatchString(username) {
		return nil, &ValidationError{Reason: "username can only contain lowercase letters, numbers, and underscores"}
	}

	_, err := uc.userRepo.GetByAddress(address)
	if err == nil {
		return nil, ErrWalletRegistered
	}

	_, err = uc.userRepo.GetByUsername(strings.ToLower(username))
	if err == nil {
		return nil, ErrUsernameTaken
	}

	user := &entity.User{
		Address:      address,
		Username:     strings.ToLower(username),
		DisplayName:  displayName,
		Bio:          bio,
		RewardPoints: rewards.WelcomeBonus,
		IsActive:     true,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user")
	}

	metrics.UsersRegistered.Inc()
	metrics.RewardPointsIssued.Add(float64(rewards.WelcomeBonus))

	return user, nil
}

func (uc *registryUseCase) CheckRegistration(address string) (*entity.User, error) {
	user, err := uc.userRepo.GetByAddress(address)
	if err != nil {
		return nil, nil
	}
	return user, nil
}

func (uc *registryUseCase) ListActiveUsers() ([]*entity.User, error) {
	users, err := uc.userRepo.ListActive()
	if err != nil {
		uc.logger.Error("Failed to list users: %v", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (uc *registryUseCase) UploadAvatar(address string, fileReader io.Reader, fileKey string, contentType string) (*entity.User, error) {
	user, err := uc.userRepo.GetByAddress(address)
	if err != nil {
		return nil, ErrUserNotFound
	}

	avatarURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar")
	}

	user.AvatarURL = avatarURL
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, fmt.Errorf("failed to update user")
	}

	return user, nil
}

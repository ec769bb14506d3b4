// Package service implements the business rules on top of the repositories.
package service

import (
	"context"
	"unicode/utf8"

	"aperture/internal/models"
	"aperture/internal/repository"
	"aperture/internal/validation"
)

// UserService provides profile business logic.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	postRepo   repository.PostRepository
}

// UpdateProfileInput is the patch payload for profile updates. Only
// non-empty fields are applied; email and password are not updatable here.
type UpdateProfileInput struct {
	UserID         uint
	Username       string
	Bio            string
	ProfilePicture string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository, postRepo repository.PostRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
		postRepo:   postRepo,
	}
}

// GetUserByID returns the bare user record.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers returns one page of users for discovery views.
func (s *UserService) ListUsers(ctx context.Context, page, pageSize int) ([]models.User, error) {
	if pageSize <= 0 {
		return nil, models.NewValidationError("Page size must be positive")
	}
	if page < 1 {
		page = 1
	}
	users, err := s.userRepo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = make([]models.User, 0)
	}
	return users, nil
}

// GetProfile returns the user with follower/following summaries and counters.
func (s *UserService) GetProfile(ctx context.Context, id uint) (*models.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.ListFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.ListFollowing(ctx, id)
	if err != nil {
		return nil, err
	}
	postCount, err := s.postRepo.CountByAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		User:      user,
		Followers: summarize(followers),
		Following: summarize(following),
		Stats: models.ProfileStats{
			Posts:     postCount,
			Followers: int64(len(followers)),
			Following: int64(len(following)),
		},
	}
	return profile, nil
}

func summarize(users []models.User) []models.UserSummary {
	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries
}

// UpdateProfile applies the patch to the user's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500

	if in.Username != "" && in.Username != user.Username {
		// Renames obey the same rules as registration.
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		// Friendly pre-check; the unique index still backstops races.
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("Username already taken")
		}
		user.Username = in.Username
	}
	if in.Bio != "" {
		if utf8.RuneCountInString(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}
	if in.ProfilePicture != "" {
		user.ProfilePicture = in.ProfilePicture
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

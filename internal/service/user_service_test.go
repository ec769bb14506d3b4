package service

import (
	"context"
	"strings"
	"testing"

	"aperture/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "alice"}, nil
	}

	followRepo := noopFollowRepo()
	followRepo.listFollowersFn = func(_ context.Context, _ uint) ([]models.User, error) {
		return []models.User{{ID: 2, Username: "bob"}, {ID: 3, Username: "carol"}}, nil
	}
	followRepo.listFollowingFn = func(_ context.Context, _ uint) ([]models.User, error) {
		return []models.User{{ID: 2, Username: "bob"}}, nil
	}

	postRepo := noopPostRepo()
	postRepo.countByAuthorFn = func(_ context.Context, _ uint) (int64, error) { return 4, nil }

	svc := NewUserService(userRepo, followRepo, postRepo)
	profile, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "alice", profile.User.Username)
	require.Len(t, profile.Followers, 2)
	assert.Equal(t, "bob", profile.Followers[0].Username)
	require.Len(t, profile.Following, 1)
	assert.Equal(t, int64(4), profile.Stats.Posts)
	assert.Equal(t, int64(2), profile.Stats.Followers)
	assert.Equal(t, int64(1), profile.Stats.Following)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}

	svc := NewUserService(userRepo, noopFollowRepo(), noopPostRepo())
	_, err := svc.GetProfile(context.Background(), 99)
	assertAppError(t, err, models.CodeNotFound)
}

func TestUserService_UpdateProfile_PatchSemantics(t *testing.T) {
	var saved *models.User
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "alice", Bio: "old bio", ProfilePicture: "old.jpg"}, nil
	}
	userRepo.updateFn = func(_ context.Context, user *models.User) error {
		saved = user
		return nil
	}

	svc := NewUserService(userRepo, noopFollowRepo(), noopPostRepo())

	// Only the bio is supplied; the other fields keep their values.
	user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Bio: "new bio"})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "new bio", user.Bio)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "old.jpg", user.ProfilePicture)
}

func TestUserService_UpdateProfile_Validation(t *testing.T) {
	svc := NewUserService(noopUserRepo(), noopFollowRepo(), noopPostRepo())

	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID:   1,
		Username: strings.Repeat("a", 31),
	})
	assertAppError(t, err, models.CodeValidation)

	_, err = svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID: 1,
		Bio:    strings.Repeat("b", 501),
	})
	assertAppError(t, err, models.CodeValidation)

	// Renames obey the registration rules, not just the length bound.
	_, err = svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID:   1,
		Username: "-x-",
	})
	assertAppError(t, err, models.CodeValidation)

	_, err = svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID:   1,
		Username: "ab",
	})
	assertAppError(t, err, models.CodeValidation)
}

func TestUserService_UpdateProfile_UsernameConflict(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 7, Username: username}, nil
	}
	userRepo.updateFn = func(_ context.Context, _ *models.User) error {
		t.Fatal("update should not be reached when the username is taken")
		return nil
	}

	svc := NewUserService(userRepo, noopFollowRepo(), noopPostRepo())
	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Username: "taken"})
	assertAppError(t, err, models.CodeConflict)
}

func TestUserService_ListUsers(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.listFn = func(_ context.Context, limit, offset int) ([]models.User, error) {
		assert.Equal(t, 20, limit)
		assert.Equal(t, 40, offset)
		return []models.User{{ID: 41, Username: "dave"}}, nil
	}

	svc := NewUserService(userRepo, noopFollowRepo(), noopPostRepo())
	users, err := svc.ListUsers(context.Background(), 3, 20)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "dave", users[0].Username)

	_, err = svc.ListUsers(context.Background(), 1, 0)
	assertAppError(t, err, models.CodeValidation)
}

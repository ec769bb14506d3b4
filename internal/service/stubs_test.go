package service

import (
	"context"
	"errors"
	"testing"

	"aperture/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		listFn:          func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	followFn           func(context.Context, uint, uint) (bool, error)
	unfollowFn         func(context.Context, uint, uint) (bool, error)
	isFollowingFn      func(context.Context, uint, uint) (bool, error)
	countFollowersFn   func(context.Context, uint) (int64, error)
	countFollowingFn   func(context.Context, uint) (int64, error)
	listFollowersFn    func(context.Context, uint) ([]models.User, error)
	listFollowingFn    func(context.Context, uint) ([]models.User, error)
	listFollowingIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.followFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.unfollowFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.listFollowersFn(ctx, userID)
}
func (s *followRepoStub) ListFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	return s.listFollowingFn(ctx, userID)
}
func (s *followRepoStub) ListFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.listFollowingIDsFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:           func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		unfollowFn:         func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		isFollowingFn:      func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		countFollowersFn:   func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countFollowingFn:   func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		listFollowersFn:    func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		listFollowingFn:    func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		listFollowingIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	getByIDFn        func(context.Context, uint, uint) (*models.Post, error)
	listByAuthorFn   func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	listByAuthorsFn  func(context.Context, []uint, int, int, uint) ([]*models.Post, error)
	countByAuthorFn  func(context.Context, uint) (int64, error)
	countByAuthorsFn func(context.Context, []uint) (int64, error)
	deleteFn         func(context.Context, uint) error
	likeFn           func(context.Context, uint, uint) (bool, error)
	unlikeFn         func(context.Context, uint, uint) (bool, error)
	isLikedFn        func(context.Context, uint, uint) (bool, error)
	countLikesFn     func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, limit, offset, currentUserID)
}
func (s *postRepoStub) ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listByAuthorsFn(ctx, authorIDs, limit, offset, currentUserID)
}
func (s *postRepoStub) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return s.countByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) CountByAuthors(ctx context.Context, authorIDs []uint) (int64, error) {
	return s.countByAuthorsFn(ctx, authorIDs)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) (bool, error) {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) CountLikes(ctx context.Context, postID uint) (int64, error) {
	return s.countLikesFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:         func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:        func(_ context.Context, id, _ uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listByAuthorFn:   func(_ context.Context, _ uint, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		listByAuthorsFn:  func(_ context.Context, _ []uint, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		countByAuthorFn:  func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countByAuthorsFn: func(_ context.Context, _ []uint) (int64, error) { return 0, nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		likeFn:           func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		unlikeFn:         func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		isLikedFn:        func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		countLikesFn:     func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
	}
}

// assertAppError asserts err carries the given application error code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, code, appErr.Code)
}

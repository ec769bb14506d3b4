package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"aperture/internal/models"
	"aperture/internal/repository"
)

// PostService provides post business logic.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries the fields accepted when creating a post.
type CreatePostInput struct {
	UserID   uint
	ImageURL string
	Caption  string
	Location string
	Tags     []string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// NormalizeTags trims each tag, splits entries that contain commas, drops
// empties and removes duplicates while preserving first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, raw := range tags {
		for _, tag := range strings.Split(raw, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

// CreatePost validates the input and stores a new post.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.ImageURL) == "" {
		return nil, models.NewValidationError("Image URL is required")
	}
	if utf8.RuneCountInString(in.Caption) > models.MaxCaptionLen {
		return nil, models.NewValidationError(fmt.Sprintf("Caption too long (max %d characters)", models.MaxCaptionLen))
	}

	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:   in.UserID,
		ImageURL: strings.TrimSpace(in.ImageURL),
		Caption:  in.Caption,
		Location: strings.TrimSpace(in.Location),
		Tags:     NormalizeTags(in.Tags),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Re-read so the author and computed counters are populated.
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// GetPost returns one post with counters relative to the viewer.
func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID, viewerID)
}

// ListByAuthor returns one page of a user's posts, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, authorID uint, page, pageSize int, viewerID uint) (*models.FeedPage, error) {
	if pageSize <= 0 {
		return nil, models.NewValidationError("Page size must be positive")
	}
	if page < 1 {
		page = 1
	}

	total, err := s.postRepo.CountByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByAuthor(ctx, authorID, pageSize, (page-1)*pageSize, viewerID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = make([]*models.Post, 0)
	}

	return &models.FeedPage{
		Posts:       posts,
		TotalPages:  totalPages(total, pageSize),
		CurrentPage: page,
	}, nil
}

// ToggleLike flips the viewer's like on a post and returns the new state.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID uint) (*models.LikeState, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}

	created, err := s.postRepo.Like(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	liked := true
	if !created {
		if _, err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
			return nil, err
		}
		liked = false
	}

	count, err := s.postRepo.CountLikes(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &models.LikeState{Liked: liked, LikesCount: count}, nil
}

// IsLiked reports whether the user has liked the post.
func (s *PostService) IsLiked(ctx context.Context, postID, userID uint) (bool, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return false, err
	}
	return s.postRepo.IsLiked(ctx, userID, postID)
}

// DeletePost removes a post and its likes and comments. Only the author may
// delete their post.
func (s *PostService) DeletePost(ctx context.Context, postID, requesterID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, 0)
	if err != nil {
		return err
	}
	if post.UserID != requesterID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}

func totalPages(total int64, pageSize int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

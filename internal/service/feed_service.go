package service

import (
	"context"

	"aperture/internal/models"
	"aperture/internal/repository"
)

// FeedService composes the home feed from the follow graph.
type FeedService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(postRepo repository.PostRepository, followRepo repository.FollowRepository) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

// ComposeFeed returns one page of posts authored by the users userID follows,
// plus their own, newest first.
func (s *FeedService) ComposeFeed(ctx context.Context, userID uint, page, pageSize int) (*models.FeedPage, error) {
	if pageSize <= 0 {
		return nil, models.NewValidationError("Page size must be positive")
	}
	if page < 1 {
		page = 1
	}

	authorIDs, err := s.followRepo.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	authorIDs = append(authorIDs, userID)

	total, err := s.postRepo.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs, pageSize, (page-1)*pageSize, userID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		// Past-the-end pages serialize as an empty array, not null.
		posts = make([]*models.Post, 0)
	}

	return &models.FeedPage{
		Posts:       posts,
		TotalPages:  totalPages(total, pageSize),
		CurrentPage: page,
	}, nil
}

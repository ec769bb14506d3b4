package service

import (
	"context"

	"aperture/internal/models"
	"aperture/internal/repository"
)

// GraphService manages the follow graph.
type GraphService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// NewGraphService returns a new GraphService.
func NewGraphService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *GraphService {
	return &GraphService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// ToggleFollow flips the follow edge from followerID to targetID. The
// returned counters pair the target's followers with the caller's following,
// which is what a profile view renders after the toggle.
func (s *GraphService) ToggleFollow(ctx context.Context, followerID, targetID uint) (*models.FollowState, error) {
	if followerID == targetID {
		return nil, models.NewInvalidOperationError("You cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, followerID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	created, err := s.followRepo.Follow(ctx, followerID, targetID)
	if err != nil {
		return nil, err
	}

	following := true
	if !created {
		// Edge already existed, so this call means unfollow.
		if _, err := s.followRepo.Unfollow(ctx, followerID, targetID); err != nil {
			return nil, err
		}
		following = false
	}

	followers, err := s.followRepo.CountFollowers(ctx, targetID)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.followRepo.CountFollowing(ctx, followerID)
	if err != nil {
		return nil, err
	}

	return &models.FollowState{
		Following:      following,
		FollowersCount: followers,
		FollowingCount: followingCount,
	}, nil
}

// IsFollowing reports whether followerID currently follows targetID.
func (s *GraphService) IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, targetID)
}

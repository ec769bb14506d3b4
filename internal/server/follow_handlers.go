package server

import (
	"github.com/gofiber/fiber/v2"
)

// ToggleFollow handles PUT /api/users/:id/follow
// The authenticated user follows :id if no edge exists, or unfollows otherwise.
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	state, err := s.graphService.ToggleFollow(c.Context(), currentUserID(c), targetID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(state)
}

// GetFollowingStatus handles GET /api/users/:id/following/:targetId
func (s *Server) GetFollowingStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	targetID, err := s.parseID(c, "targetId")
	if err != nil {
		return nil
	}

	following, err := s.graphService.IsFollowing(c.Context(), id, targetID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"following": following,
	})
}

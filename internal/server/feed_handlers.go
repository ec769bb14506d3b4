package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed
// Returns one page of posts authored by the users the caller follows, plus
// the caller's own posts, newest first.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	pq := parsePageQuery(c, 10)

	page, err := s.feedService.ComposeFeed(c.Context(), currentUserID(c), pq.Page, pq.Limit)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(page)
}

package server

import (
	"aperture/internal/models"
	"aperture/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.userService.GetProfile(c.Context(), currentUserID(c))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Username       string `json:"username"`
		Bio            string `json:"bio"`
		ProfilePicture string `json:"profile_picture"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:         currentUserID(c),
		Username:       req.Username,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(user)
}

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	pq := parsePageQuery(c, 20)
	users, err := s.userService.ListUsers(c.Context(), pq.Page, pq.Limit)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(users)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.userService.GetProfile(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(profile)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	pq := parsePageQuery(c, 10)
	page, err := s.postService.ListByAuthor(c.Context(), id, pq.Page, pq.Limit, currentUserID(c))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(page)
}

package server

import (
	"encoding/json"
	"strings"

	"aperture/internal/models"
	"aperture/internal/service"

	"github.com/gofiber/fiber/v2"
)

// tagList accepts tags either as a JSON array of strings or as a single
// comma-separated string, matching what mobile clients send.
type tagList []string

func (t *tagList) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*t = strings.Split(single, ",")
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*t = many
	return nil
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		ImageURL string  `json:"image_url"`
		Caption  string  `json:"caption"`
		Location string  `json:"location"`
		Tags     tagList `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:   currentUserID(c),
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
		Location: req.Location,
		Tags:     req.Tags,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id, currentUserID(c))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), id, currentUserID(c)); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Post deleted",
	})
}

// GetLikedStatus handles GET /api/posts/:id/liked
func (s *Server) GetLikedStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	liked, err := s.postService.IsLiked(c.Context(), id, currentUserID(c))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"liked": liked,
	})
}

// ToggleLike handles PUT /api/posts/:id/like
// The authenticated user likes :id if not yet liked, or removes the like otherwise.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	state, err := s.postService.ToggleLike(c.Context(), id, currentUserID(c))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(state)
}

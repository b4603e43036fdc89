package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) registerWebRoutes(g fiber.Router) {
	g.Get("", s.webShow)
	g.Get("/stats", s.webStats)
}

// webShow returns the full landing page payload in one round trip
func (s *Server) webShow(c *fiber.Ctx) error {
	payload, err := s.web.WebData(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(payload)
}

func (s *Server) webStats(c *fiber.Ctx) error {
	stats, err := s.web.SiteStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (s *Server) statusShow(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "online",
		"time":   time.Now().Format(time.RFC3339),
	})
}

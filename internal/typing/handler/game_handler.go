package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/playtype/typing-game-service/internal/typing/dto"
	"github.com/playtype/typing-game-service/internal/typing/service"
)

type GameHandler struct {
	gameService *service.GameService
}

func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

func (h *GameHandler) CreateSession(c *fiber.Ctx) error {
	var input dto.SessionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	session, err := h.gameService.CreateSession(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SessionOutputFrom(session))
}

func (h *GameHandler) ListSessions(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid user id",
		})
	}

	sessions, err := h.gameService.SessionsByUser(c.Context(), int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list sessions",
		})
	}

	out := make([]dto.SessionOutput, 0, len(sessions))
	for i := range sessions {
		out = append(out, dto.SessionOutputFrom(&sessions[i]))
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *GameHandler) CreateAttempt(c *fiber.Ctx) error {
	var input dto.AttemptInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	attempt, err := h.gameService.RecordAttempt(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AttemptOutputFrom(attempt))
}

func (h *GameHandler) GetUserStats(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid user id",
		})
	}

	stats, err := h.gameService.UserStats(c.Context(), int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to get stats",
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.StatsOutputFrom(stats))
}

func (h *GameHandler) GetLeaderboard(c *fiber.Ctx) error {
	entries, err := h.gameService.Leaderboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to get leaderboard",
		})
	}

	out := make([]dto.LeaderboardRow, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LeaderboardRowFrom(e))
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

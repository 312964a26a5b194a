package controller

import (
	"errors"
	"log"

	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/benbeisheim/chessrules/internal/service"
	"github.com/gofiber/fiber/v2"
)

type BoardController struct {
	boardService *service.BoardService
}

func NewBoardController(boardService *service.BoardService) *BoardController {
	return &BoardController{boardService: boardService}
}

type createBoardRequest struct {
	Placement string `json:"placement"`
	Empty     bool   `json:"empty"`
}

type placeRequest struct {
	Piece string `json:"piece"`
}

type resetRequest struct {
	Empty bool `json:"empty"`
}

// statusFor maps service and model errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrBoardNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrNotOwner):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrEmptySquare):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrOutOfRange),
		errors.Is(err, model.ErrInvalidNotation),
		errors.Is(err, model.ErrInvalidPiece):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func replyError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (bc *BoardController) CreateBoard(c *fiber.Ctx) error {
	clientID := c.Locals("clientID").(string)

	var req createBoardRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	view, err := bc.boardService.CreateBoard(clientID, req.Placement, req.Empty)
	if err != nil {
		return replyError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (bc *BoardController) GetBoard(c *fiber.Ctx) error {
	view, err := bc.boardService.GetBoard(c.Params("boardId"))
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(view)
}

func (bc *BoardController) PlacePiece(c *fiber.Ctx) error {
	clientID := c.Locals("clientID").(string)

	var req placeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	view, err := bc.boardService.PlacePiece(c.Params("boardId"), clientID, c.Params("square"), req.Piece)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(view)
}

func (bc *BoardController) ResetBoard(c *fiber.Ctx) error {
	clientID := c.Locals("clientID").(string)

	var req resetRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	view, err := bc.boardService.ResetBoard(c.Params("boardId"), clientID, req.Empty)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(view)
}

func (bc *BoardController) GetMoves(c *fiber.Ctx) error {
	moves, err := bc.boardService.Moves(c.Params("boardId"), c.Params("square"))
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(moves)
}

func (bc *BoardController) DeleteBoard(c *fiber.Ctx) error {
	clientID := c.Locals("clientID").(string)

	if err := bc.boardService.DeleteBoard(c.Params("boardId"), clientID); err != nil {
		return replyError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes mounts the board endpoints on router.
func (bc *BoardController) RegisterRoutes(router fiber.Router) {
	router.Post("/board", bc.CreateBoard)
	boards := router.Group("/board")
	boards.Get("/:boardId", bc.GetBoard)
	boards.Delete("/:boardId", bc.DeleteBoard)
	boards.Post("/:boardId/reset", bc.ResetBoard)
	boards.Put("/:boardId/squares/:square", bc.PlacePiece)
	boards.Get("/:boardId/moves/:square", bc.GetMoves)
}

package handlers

import (
	"errors"

	"ledgr/internal/services/item"
	"ledgr/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ItemHandler struct {
	itemService item.Service
}

func NewItemHandler(itemService item.Service) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

func itemError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return utils.NotFound(c, err.Error())
	case errors.Is(err, item.ErrForbidden):
		return utils.Forbidden(c, err.Error())
	case errors.Is(err, item.ErrTitleEmpty):
		return utils.BadRequest(c, err.Error())
	default:
		return utils.InternalError(c, "internal error")
	}
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	created, err := h.itemService.Create(claims.UserID, input.Title, input.Description)
	if err != nil {
		return itemError(c, err)
	}

	return utils.Created(c, created)
}

func (h *ItemHandler) Get(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid item id")
	}

	found, err := h.itemService.Get(itemID, claims.UserID, claims.IsAdmin())
	if err != nil {
		return itemError(c, err)
	}

	return utils.Success(c, found)
}

func (h *ItemHandler) List(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	p := utils.GetPagination(c, 20)
	items, total, err := h.itemService.List(claims.UserID, claims.IsAdmin(), p.Limit, p.Skip)
	if err != nil {
		return utils.InternalError(c, "failed to list items")
	}
	p.Total = total

	return utils.Success(c, fiber.Map{
		"items":      items,
		"pagination": p,
	})
}

func (h *ItemHandler) Update(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid item id")
	}

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	updated, err := h.itemService.Update(itemID, claims.UserID, claims.IsAdmin(), input.Title, input.Description)
	if err != nil {
		return itemError(c, err)
	}

	return utils.Success(c, updated)
}

func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid item id")
	}

	if err := h.itemService.Delete(itemID, claims.UserID, claims.IsAdmin()); err != nil {
		return itemError(c, err)
	}

	return utils.Success(c, fiber.Map{"message": "item deleted"})
}

package handlers

import (
	"errors"
	"strconv"

	"ledgr/internal/models"
	"ledgr/internal/repositories"
	"ledgr/internal/services/user"
	"ledgr/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the administrative API: user management and
// ledger-wide reporting.
type AdminHandler struct {
	userService user.Service
	walletRepo  repositories.WalletRepository
}

func NewAdminHandler(userService user.Service, walletRepo repositories.WalletRepository) *AdminHandler {
	return &AdminHandler{
		userService: userService,
		walletRepo:  walletRepo,
	}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	p := utils.GetPagination(c, 20)
	users, total, err := h.userService.ListPaginated(p.Limit, p.Skip)
	if err != nil {
		return utils.InternalError(c, "failed to list users")
	}
	p.Total = total

	return utils.Success(c, fiber.Map{
		"users":      users,
		"pagination": p,
	})
}

// CreateUser provisions a user with an explicit role, unlike self
// registration which always yields "user".
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	created, err := h.userService.Create(&input)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return utils.Conflict(c, err.Error())
		}
		return utils.BadRequest(c, err.Error())
	}

	return utils.Created(c, created)
}

func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	u, err := h.userService.GetByID(uint(userID))
	if err != nil {
		return utils.NotFound(c, "user not found")
	}

	return utils.Success(c, u)
}

// DeleteUser removes a user and, through the cascade, their wallets,
// transactions, and items.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	if _, err := h.userService.GetByID(uint(userID)); err != nil {
		return utils.NotFound(c, "user not found")
	}

	if err := h.userService.Delete(uint(userID)); err != nil {
		return utils.InternalError(c, "failed to delete user")
	}

	return utils.Success(c, fiber.Map{"message": "user deleted"})
}

// Stats reports the wallet count and the total balance held per currency.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	balances, err := h.walletRepo.TotalBalanceByCurrency()
	if err != nil {
		return utils.InternalError(c, "failed to aggregate balances")
	}

	walletCount, err := h.walletRepo.CountWallets()
	if err != nil {
		return utils.InternalError(c, "failed to count wallets")
	}

	return utils.Success(c, fiber.Map{
		"wallets":              walletCount,
		"balances_by_currency": balances,
	})
}

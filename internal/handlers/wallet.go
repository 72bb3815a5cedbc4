package handlers

import (
	"errors"

	"ledgr/internal/currency"
	"ledgr/internal/models"
	"ledgr/internal/services/transfer"
	"ledgr/internal/services/wallet"
	"ledgr/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	walletService   wallet.Service
	transferService transfer.Service
}

func NewWalletHandler(walletService wallet.Service, transferService transfer.Service) *WalletHandler {
	return &WalletHandler{
		walletService:   walletService,
		transferService: transferService,
	}
}

// extractUserClaims is a helper function to reduce duplication
func extractUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

// walletError maps ledger errors onto HTTP status codes.
func walletError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, wallet.ErrWalletNotFound):
		return utils.NotFound(c, err.Error())
	case errors.Is(err, wallet.ErrForbidden):
		return utils.Forbidden(c, err.Error())
	case errors.Is(err, wallet.ErrDuplicateCurrency):
		return utils.Conflict(c, err.Error())
	case errors.Is(err, currency.ErrUnsupportedCurrency):
		return utils.UnprocessableEntity(c, err.Error())
	case errors.Is(err, wallet.ErrWalletLimitReached),
		errors.Is(err, wallet.ErrInvalidAmount),
		errors.Is(err, wallet.ErrInvalidType),
		errors.Is(err, wallet.ErrInsufficientFunds),
		errors.Is(err, currency.ErrInvalidAmount),
		errors.Is(err, transfer.ErrSameWallet):
		return utils.BadRequest(c, err.Error())
	default:
		return utils.InternalError(c, "internal error")
	}
}

func (h *WalletHandler) CreateWallet(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Currency string `json:"currency"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	created, err := h.walletService.CreateWallet(c.Context(), claims.UserID, input.Currency)
	if err != nil {
		return walletError(c, err)
	}

	return utils.Created(c, created)
}

func (h *WalletHandler) ListWallets(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var wallets []models.Wallet
	if claims.IsAdmin() {
		wallets, err = h.walletService.ListAllWallets(c.Context())
	} else {
		wallets, err = h.walletService.ListWallets(c.Context(), claims.UserID)
	}
	if err != nil {
		return walletError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"wallets": wallets,
		"count":   len(wallets),
	})
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	walletID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	w, err := h.walletService.GetWallet(c.Context(), walletID)
	if err != nil {
		return walletError(c, err)
	}
	if !claims.IsAdmin() && w.UserID != claims.UserID {
		return utils.Forbidden(c, "not enough permissions")
	}

	recent, _, err := h.walletService.ListTransactions(c.Context(), walletID, 0, 10)
	if err != nil {
		return walletError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"wallet":              w,
		"recent_transactions": recent,
	})
}

func (h *WalletHandler) CreateTransaction(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	walletID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	var input struct {
		Amount   decimal.Decimal `json:"amount"`
		Type     string          `json:"type"`
		Currency string          `json:"currency"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	w, err := h.walletService.GetWallet(c.Context(), walletID)
	if err != nil {
		return walletError(c, err)
	}
	if !claims.IsAdmin() && w.UserID != claims.UserID {
		return utils.Forbidden(c, "not enough permissions")
	}

	updated, record, err := h.walletService.ApplyTransaction(c.Context(), walletID, input.Type, input.Amount, input.Currency)
	if err != nil {
		return walletError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"transaction": record,
		"balance":     updated.Balance,
	})
}

func (h *WalletHandler) ListTransactions(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	walletID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	w, err := h.walletService.GetWallet(c.Context(), walletID)
	if err != nil {
		return walletError(c, err)
	}
	if !claims.IsAdmin() && w.UserID != claims.UserID {
		return utils.Forbidden(c, "not enough permissions")
	}

	p := utils.GetPagination(c, 20)
	txs, total, err := h.walletService.ListTransactions(c.Context(), walletID, p.Skip, p.Limit)
	if err != nil {
		return walletError(c, err)
	}
	p.Total = total

	return utils.Success(c, fiber.Map{
		"transactions": txs,
		"pagination":   p,
	})
}

func (h *WalletHandler) Transfer(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		FromWalletID uuid.UUID       `json:"from_wallet_id"`
		ToWalletID   uuid.UUID       `json:"to_wallet_id"`
		Amount       decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	debitTx, creditTx, err := h.transferService.Transfer(c.Context(), claims.UserID, input.FromWalletID, input.ToWalletID, input.Amount)
	if err != nil {
		return walletError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"debit":  debitTx,
		"credit": creditTx,
	})
}

package handler

import (
	"encoding/json"
	"net/http"
	"tenbank-api/common"
	"tenbank-api/model"
	"tenbank-api/service"
)

// LedgerHandler exposes the three balance-mutating operations.
type LedgerHandler struct {
	service *service.LedgerService
}

func NewLedgerHandler(s *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: s}
}

// mapLedgerError translates domain errors into caller-distinguishable HTTP
// statuses. Anything unrecognized is an infrastructure failure.
func mapLedgerError(err error) *common.AppError {
	switch err {
	case model.ErrAccountNotFound:
		return common.NewAppError(http.StatusNotFound, err.Error(), err)
	case model.ErrNotOwner:
		return common.NewAppError(http.StatusForbidden, err.Error(), err)
	case model.ErrWrongPassword, model.ErrInsufficientFunds, model.ErrInvalidAmount, model.ErrSameAccountTransfer:
		return common.NewAppError(http.StatusBadRequest, err.Error(), err)
	default:
		return common.NewAppError(http.StatusInternalServerError, "Could not process ledger operation", err)
	}
}

// Deposit godoc
// @Summary      Deposit money into an account
// @Description  Credits an account owned by the authenticated user and records one history entry.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        deposit body model.DepositRequest true "Deposit payload"
// @Success      200  {object}  model.Account
// @Failure      400  {object}  common.AppError "Invalid amount"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      403  {object}  common.AppError "Forbidden: account is not owned by the user"
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error while processing deposit"
// @Router       /api/deposits [post]
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.DepositRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	account, err := h.service.Deposit(r.Context(), req, userID)
	if err != nil {
		return mapLedgerError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}

// Withdraw godoc
// @Summary      Withdraw money from an account
// @Description  Debits an account owned by the authenticated user after verifying the account password and balance.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        withdrawal body model.WithdrawRequest true "Withdrawal payload"
// @Success      200  {object}  model.Account
// @Failure      400  {object}  common.AppError "Invalid amount, wrong password or insufficient funds"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      403  {object}  common.AppError "Forbidden: account is not owned by the user"
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error while processing withdrawal"
// @Router       /api/withdrawals [post]
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.WithdrawRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	account, err := h.service.Withdraw(r.Context(), req, userID)
	if err != nil {
		return mapLedgerError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}

// Transfer godoc
// @Summary      Transfer money between accounts
// @Description  Moves a specified amount from an account owned by the authenticated user to another account, recording one history entry referencing both sides.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        transfer body model.TransferRequest true "Transfer payload"
// @Success      201  {object}  model.History
// @Failure      400  {object}  common.AppError "Invalid amount, same-account transfer, wrong password or insufficient funds"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      403  {object}  common.AppError "Forbidden: source account is not owned by the user"
// @Failure      404  {object}  common.AppError "Source or target account not found"
// @Failure      500  {object}  common.AppError "Internal server error while processing transfer"
// @Router       /api/transfers [post]
func (h *LedgerHandler) Transfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransferRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	history, err := h.service.Transfer(r.Context(), req, userID)
	if err != nil {
		return mapLedgerError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(history)
	return nil
}

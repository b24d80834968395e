package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"tenbank-api/common"
	"tenbank-api/model"
	"tenbank-api/service"
)

type HistoryHandler struct {
	service *service.HistoryService
}

func NewHistoryHandler(s *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: s}
}

// ListHistory godoc
// @Summary      List account history
// @Description  Retrieves one page of the ledger history for an account owned by the authenticated user, filtered by type (all, deposit, withdrawal), most recent first.
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        accountId path  int    true  "The ID of the account"
// @Param        type      query string false "History filter: all, deposit or withdrawal" default(all)
// @Param        page      query int    false "Page number, starting at 1" default(1)
// @Param        size      query int    false "Page size" default(10)
// @Success      200  {object}  model.HistoryPage
// @Failure      400  {object}  common.AppError "Invalid account ID, page parameters or history type"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      403  {object}  common.AppError "Forbidden: account is not owned by the user"
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error while retrieving history"
// @Router       /api/accounts/{accountId}/history [get]
func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	accountIDStr := r.PathValue("accountId")
	accountID, err := strconv.Atoi(accountIDStr)
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid account ID in URL path", err)
	}

	historyType := r.URL.Query().Get("type")
	if historyType == "" {
		historyType = model.HistoryTypeAll
	}

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err = strconv.Atoi(pageStr); err != nil || page < 1 {
			return common.NewAppError(http.StatusBadRequest, "Invalid page parameter", err)
		}
	}

	pageSize := service.DefaultPageSize
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		if pageSize, err = strconv.Atoi(sizeStr); err != nil || pageSize < 1 {
			return common.NewAppError(http.StatusBadRequest, "Invalid size parameter", err)
		}
	}

	historyPage, err := h.service.ListHistory(r.Context(), userID, accountID, historyType, page, pageSize)
	if err != nil {
		switch err {
		case model.ErrInvalidHistoryType:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		case model.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		case model.ErrNotOwner:
			return common.NewAppError(http.StatusForbidden, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve history", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(historyPage)
	return nil
}

package service

import (
	"context"
	"database/sql"
	"tenbank-api/logger"
	"tenbank-api/model"
	"tenbank-api/repository"

	"github.com/sirupsen/logrus"
)

// DefaultPageSize is used when the caller does not specify a page size.
const DefaultPageSize = 10

// HistoryService answers read-only queries over the ledger's audit trail.
type HistoryService struct {
	accountRepo repository.IAccountRepository
	historyRepo repository.IHistoryRepository
}

func NewHistoryService(accountRepo repository.IAccountRepository, historyRepo repository.IHistoryRepository) *HistoryService {
	return &HistoryService{
		accountRepo: accountRepo,
		historyRepo: historyRepo,
	}
}

// ListHistory returns one page of an account's history, filtered by type
// (all, deposit or withdrawal), most recent first. The account must be owned
// by userID.
func (s *HistoryService) ListHistory(ctx context.Context, userID, accountID int, historyType string, page, pageSize int) (*model.HistoryPage, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    userID,
		"account_id": accountID,
		"type":       historyType,
		"page":       page,
	})

	if err := model.ValidateHistoryType(historyType); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}
	if err := account.CheckOwner(userID); err != nil {
		log.Warn("Permission denied for accessing account history")
		return nil, err
	}

	totalCount, err := s.historyRepo.CountHistoryByAccountID(accountID, historyType)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	entries, err := s.historyRepo.GetHistoryByAccountID(accountID, historyType, offset, pageSize)
	if err != nil {
		return nil, err
	}

	return &model.HistoryPage{
		Account:    account,
		Entries:    entries,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: (totalCount + pageSize - 1) / pageSize,
	}, nil
}

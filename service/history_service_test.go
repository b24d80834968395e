package service

import (
	"context"
	"database/sql"
	"tenbank-api/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryService_ListHistory(t *testing.T) {
	ctx := context.Background()
	account := &model.Account{ID: 10, Number: "1111", UserID: 1, Balance: 1000}

	t.Run("paginates withdrawals most recent first", func(t *testing.T) {
		mockAccountRepo := new(MockAccountRepository)
		mockHistoryRepo := new(MockHistoryRepository)
		historyService := NewHistoryService(mockAccountRepo, mockHistoryRepo)

		entries := []*model.History{{ID: 5}, {ID: 4}}

		mockAccountRepo.On("GetAccountByID", 10).Return(account, nil).Once()
		mockHistoryRepo.On("CountHistoryByAccountID", 10, model.HistoryTypeWithdrawal).Return(5, nil).Once()
		mockHistoryRepo.On("GetHistoryByAccountID", 10, model.HistoryTypeWithdrawal, 0, 2).Return(entries, nil).Once()

		page, err := historyService.ListHistory(ctx, 1, 10, model.HistoryTypeWithdrawal, 1, 2)

		assert.NoError(t, err)
		assert.Len(t, page.Entries, 2)
		assert.Equal(t, 5, page.TotalCount)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 1, page.Page)
		mockAccountRepo.AssertExpectations(t)
		mockHistoryRepo.AssertExpectations(t)
	})

	t.Run("computes offset from page", func(t *testing.T) {
		mockAccountRepo := new(MockAccountRepository)
		mockHistoryRepo := new(MockHistoryRepository)
		historyService := NewHistoryService(mockAccountRepo, mockHistoryRepo)

		mockAccountRepo.On("GetAccountByID", 10).Return(account, nil).Once()
		mockHistoryRepo.On("CountHistoryByAccountID", 10, model.HistoryTypeAll).Return(5, nil).Once()
		mockHistoryRepo.On("GetHistoryByAccountID", 10, model.HistoryTypeAll, 4, 2).Return([]*model.History{{ID: 1}}, nil).Once()

		page, err := historyService.ListHistory(ctx, 1, 10, model.HistoryTypeAll, 3, 2)

		assert.NoError(t, err)
		assert.Len(t, page.Entries, 1)
		mockHistoryRepo.AssertExpectations(t)
	})

	t.Run("invalid type rejected before any query", func(t *testing.T) {
		mockAccountRepo := new(MockAccountRepository)
		mockHistoryRepo := new(MockHistoryRepository)
		historyService := NewHistoryService(mockAccountRepo, mockHistoryRepo)

		_, err := historyService.ListHistory(ctx, 1, 10, "bogus", 1, 2)

		assert.Equal(t, model.ErrInvalidHistoryType, err)
		mockAccountRepo.AssertNotCalled(t, "GetAccountByID")
		mockHistoryRepo.AssertNotCalled(t, "CountHistoryByAccountID")
	})

	t.Run("account not found", func(t *testing.T) {
		mockAccountRepo := new(MockAccountRepository)
		mockHistoryRepo := new(MockHistoryRepository)
		historyService := NewHistoryService(mockAccountRepo, mockHistoryRepo)

		mockAccountRepo.On("GetAccountByID", 99).Return(nil, sql.ErrNoRows).Once()

		_, err := historyService.ListHistory(ctx, 1, 99, model.HistoryTypeAll, 1, 2)

		assert.Equal(t, model.ErrAccountNotFound, err)
		mockHistoryRepo.AssertNotCalled(t, "CountHistoryByAccountID")
	})

	t.Run("not owner", func(t *testing.T) {
		mockAccountRepo := new(MockAccountRepository)
		mockHistoryRepo := new(MockHistoryRepository)
		historyService := NewHistoryService(mockAccountRepo, mockHistoryRepo)

		mockAccountRepo.On("GetAccountByID", 10).Return(account, nil).Once()

		_, err := historyService.ListHistory(ctx, 2, 10, model.HistoryTypeAll, 1, 2)

		assert.Equal(t, model.ErrNotOwner, err)
		mockHistoryRepo.AssertNotCalled(t, "GetHistoryByAccountID")
	})
}

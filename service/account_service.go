package service

import (
	"context"
	"encoding/json"
	"tenbank-api/logger"
	"tenbank-api/model"
	"tenbank-api/repository"
	"time"

	"github.com/sirupsen/logrus"
)

// accountsCacheTTL bounds staleness if an invalidation is ever missed.
const accountsCacheTTL = 10 * time.Minute

// AccountService handles account creation and listing. Listing uses a
// cache-aside strategy over Redis.
type AccountService struct {
	repo  repository.IAccountRepository
	cache ICacheClient
}

func NewAccountService(repo repository.IAccountRepository, cache ICacheClient) *AccountService {
	return &AccountService{
		repo:  repo,
		cache: cache,
	}
}

// CreateAccount opens a new account with a caller-supplied number, password
// and strictly positive initial balance. A duplicate number surfaces as
// model.ErrDuplicateAccountNumber.
func (s *AccountService) CreateAccount(ctx context.Context, req model.CreateAccountRequest, userID int) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"number":  req.Number,
	})
	log.Info("Creating a new account")

	if req.Balance <= 0 {
		return nil, model.ErrInvalidAmount
	}

	account := &model.Account{
		Number:   req.Number,
		Password: req.Password,
		Balance:  req.Balance,
		UserID:   userID,
	}

	if err := s.repo.CreateAccount(account); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Del(ctx, accountsCacheKey(userID))
	}

	return account, nil
}

// ListAccountsForUser lists a user's accounts, serving from cache on a hit
// and refilling the cache on a miss.
func (s *AccountService) ListAccountsForUser(ctx context.Context, userID int) ([]*model.Account, error) {
	cacheKey := accountsCacheKey(userID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var accounts []*model.Account
			if err := json.Unmarshal([]byte(cached), &accounts); err == nil {
				return accounts, nil
			}
		}
	}

	accounts, err := s.repo.GetAccountsByUserID(userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(accounts); err == nil {
			s.cache.Set(ctx, cacheKey, data, accountsCacheTTL)
		}
	}

	return accounts, nil
}

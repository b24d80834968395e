package model

import "time"

// Account is a balance-bearing entity. Balance is stored in minor currency
// units, never negative. UserID identifies the owner and is immutable after
// creation.
type Account struct {
	ID        int       `json:"id"`
	Number    string    `json:"number"`
	Password  string    `json:"-"`
	Balance   int64     `json:"balance"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CheckOwner verifies that the authenticated principal owns this account.
func (a *Account) CheckOwner(userID int) error {
	if a.UserID != userID {
		return ErrNotOwner
	}
	return nil
}

// CheckPassword verifies the account-level credential. This is distinct from
// the user's login credential.
func (a *Account) CheckPassword(password string) error {
	if a.Password != password {
		return ErrWrongPassword
	}
	return nil
}

// CheckBalance verifies that the account can cover a debit of amount.
func (a *Account) CheckBalance(amount int64) error {
	if a.Balance < amount {
		return ErrInsufficientFunds
	}
	return nil
}

func (a *Account) Deposit(amount int64) {
	a.Balance += amount
}

// Withdraw debits the balance. Callers must run CheckBalance first; the
// ledger service enforces the check order.
func (a *Account) Withdraw(amount int64) {
	a.Balance -= amount
}

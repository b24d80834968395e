package model

// RegisterRequest defines the payload for creating a new user.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// CreateAccountRequest defines the payload for opening a new account.
// The initial balance must be strictly positive.
type CreateAccountRequest struct {
	Number   string `json:"number" validate:"required"`
	Password string `json:"password" validate:"required"`
	Balance  int64  `json:"balance" validate:"required,gt=0"`
}

// DepositRequest credits an account owned by the authenticated user.
type DepositRequest struct {
	AccountNumber string `json:"account_number" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
}

// WithdrawRequest debits an account; the account-level password is required
// on the debit side.
type WithdrawRequest struct {
	AccountNumber string `json:"account_number" validate:"required"`
	Password      string `json:"password" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
}

// TransferRequest moves money between two accounts. The source account must
// be owned by the authenticated user and its password must match.
type TransferRequest struct {
	FromAccountNumber string `json:"from_account_number" validate:"required"`
	Password          string `json:"password" validate:"required"`
	ToAccountNumber   string `json:"to_account_number" validate:"required"`
	Amount            int64  `json:"amount" validate:"required,gt=0"`
}

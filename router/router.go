package router

import (
	"net/http"
	"tenbank-api/handler"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(userHandler *handler.UserHandler, accountHandler *handler.AccountHandler, ledgerHandler *handler.LedgerHandler, historyHandler *handler.HistoryHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("POST /register", handler.ErrorHandlingMiddleware(userHandler.Register))
	mux.Handle("POST /login", handler.ErrorHandlingMiddleware(userHandler.Login))

	// Everything under /api requires an authenticated principal.
	api := http.NewServeMux()
	api.Handle("POST /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.CreateAccount))
	api.Handle("GET /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.ListAccounts))
	api.Handle("GET /api/accounts/{accountId}/history", handler.ErrorHandlingMiddleware(historyHandler.ListHistory))
	api.Handle("POST /api/deposits", handler.ErrorHandlingMiddleware(ledgerHandler.Deposit))
	api.Handle("POST /api/withdrawals", handler.ErrorHandlingMiddleware(ledgerHandler.Withdraw))
	api.Handle("POST /api/transfers", handler.ErrorHandlingMiddleware(ledgerHandler.Transfer))
	mux.Handle("/api/", handler.AuthMiddleware(api))

	return mux
}

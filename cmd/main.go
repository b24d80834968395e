package main

import (
	"tenbank-api/app"

	_ "tenbank-api/docs"
)

// @title           TenBank Ledger API
// @version         1.0
// @description     Account ledger core: deposits, withdrawals, transfers and audit history.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}

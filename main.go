package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/campuselect/election-api/cmd/app"
)

// @title           Campus Election API
// @description     Single-election campus voting service: scan-verified ballots, admin candidate management and live tallies.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}

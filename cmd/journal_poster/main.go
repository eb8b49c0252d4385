package main

import (
	"os"

	"github.com/SscSPs/journal_posting/internal/cli"
)

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.3 init --dir ../../ --generalInfo cmd/journal_poster/main.go --output ../docs --parseInternal --outputTypes go

// @title Journal Poster API
// @version 1.0
// @description Posts balanced double-entry journal entries atomically.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

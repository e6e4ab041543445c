//go:build tools
// +build tools

// Package tools pins the versions of the command line tools used to lint,
// migrate, regenerate queries, swagger docs and mocks, and compare benchmarks.
//
//	go run github.com/pressly/goose/v3/cmd/goose -dir internal/database/migrations/postgres postgres "$DB_URL" status
//	go run github.com/sqlc-dev/sqlc/cmd/sqlc generate
//	go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go
//	go run github.com/vektra/mockery/v2
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)

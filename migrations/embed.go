// Package migrations встраивает SQL миграции, чтобы их применял goose при старте сервиса
package migrations

import "embed"

// FS содержит все *.sql миграции
//
//go:embed *.sql
var FS embed.FS

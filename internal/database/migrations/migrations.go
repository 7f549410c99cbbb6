package migrations

import "embed"

// Migrations - встроенные SQL-миграции для goose
//
//go:embed *.sql
var Migrations embed.FS

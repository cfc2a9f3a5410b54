// Package migrations встраивает SQL-миграции схемы и начального набора вопросов в бинарник.
package migrations

import "embed"

// Dir каталог миграций внутри FS
const Dir = "sql"

//go:embed sql/*.sql
var FS embed.FS

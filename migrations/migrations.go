// Package migrations embeds the schema migrations for every supported store.
// Each store has its own directory, named after the golang-migrate database driver.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

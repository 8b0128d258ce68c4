// Package migrations embeds the forward-only SQL schema for the shared
// habit database (users, tokens, habits, habit_logs).
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS

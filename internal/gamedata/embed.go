// Package gamedata provides the spell catalog and the embedded tuning tables
// (spells.json, teams.json) that go with it.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// Package database embeds the schema applied by cmd/initdb.
package database

import (
	_ "embed"
	"strings"
)

//go:embed init.sql
var initSQL string

// Statements splits init.sql into executable statements, dropping comment lines.
func Statements() []string {
	return splitStatements(initSQL)
}

func splitStatements(script string) []string {
	var cleaned strings.Builder
	for line := range strings.SplitSeq(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		cleaned.WriteString(line)
		cleaned.WriteByte('\n')
	}

	var statements []string
	for stmt := range strings.SplitSeq(cleaned.String(), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}

	return statements
}

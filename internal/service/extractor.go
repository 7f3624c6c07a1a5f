package service

import (
	"regexp"
	"strings"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/port"
)

var fencedSQLRe = regexp.MustCompile("(?s)```sql(.*?)```")

// sqlKeywords is the fixed keyword set used by the fallback line scan.
var sqlKeywords = []string{
	"SELECT", "INSERT", "UPDATE", "DELETE", "JOIN",
	"FROM", "WHERE", "ORDER", "GROUP", "LIMIT",
}

// HeuristicExtractor pulls a single SQL statement out of free-form model
// output. It implements port.SQLExtractor.
type HeuristicExtractor struct{}

// NewHeuristicExtractor returns the default two-tier extractor.
func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

// Extract parses raw completion text into one SQL statement.
//
// Tier 1: the first ```sql fenced block wins, trimmed, verbatim.
// Tier 2: scan lines top to bottom, keeping lines that contain any SQL
// keyword (case-insensitive substring match), joined with single spaces,
// stopping inclusively at the first kept line containing a semicolon.
//
// The fallback is lossy on purpose: it tolerates model chatter around the
// statement, at the cost of absorbing prose lines that merely mention a
// keyword like LIMIT. Callers needing stricter parsing can substitute a
// grammar-aware port.SQLExtractor.
func (e *HeuristicExtractor) Extract(raw string) (string, error) {
	if m := fencedSQLRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1]), nil
	}

	var kept []string
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		upper := strings.ToUpper(line)
		matched := false
		for _, kw := range sqlKeywords {
			if strings.Contains(upper, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		kept = append(kept, strings.TrimSpace(line))
		if strings.Contains(line, ";") {
			break
		}
	}

	if len(kept) == 0 {
		return "", port.ErrNoSQL
	}
	return strings.Join(kept, " "), nil
}

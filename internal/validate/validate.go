// Package validate holds the caller-boundary input checks shared by the
// CLI and MCP surfaces. The aggregation core never validates; violations
// surface here as structured validation errors.
package validate

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"japanfinagent/internal/fetcher"
)

const (
	// MaxWatchlist bounds the earnings-monitor fan-out.
	MaxWatchlist = 20
	// MaxKeywordLen bounds e-Stat search keywords, in runes.
	MaxKeywordLen = 200
)

var (
	codeRe   = regexp.MustCompile(`^[0-9]{4}$`)
	edinetRe = regexp.MustCompile(`^[A-Z][0-9]{5}$`)
	periodRe = regexp.MustCompile(`^[0-9]{4}$`)
)

// StockCode checks a 4-digit stock code like "7203".
func StockCode(code string) error {
	if !codeRe.MatchString(code) {
		return fetcher.NewValidationError(fmt.Sprintf("%q is not a valid 4-digit stock code", code))
	}
	return nil
}

// EdinetCode checks an EDINET filer code like "E02144".
func EdinetCode(code string) error {
	if !edinetRe.MatchString(code) {
		return fetcher.NewValidationError(fmt.Sprintf("%q is not a valid EDINET code (expected a letter followed by 5 digits)", code))
	}
	return nil
}

// Period checks a 4-digit fiscal year like "2025".
func Period(period string) error {
	if !periodRe.MatchString(period) {
		return fetcher.NewValidationError(fmt.Sprintf("%q is not a valid 4-digit filing year", period))
	}
	return nil
}

// Keyword checks an e-Stat search keyword: non-empty, at most
// MaxKeywordLen runes.
func Keyword(keyword string) error {
	if keyword == "" {
		return fetcher.NewValidationError("keyword must not be empty")
	}
	if utf8.RuneCountInString(keyword) > MaxKeywordLen {
		return fetcher.NewValidationError(fmt.Sprintf("keyword exceeds %d characters", MaxKeywordLen))
	}
	return nil
}

// Watchlist checks an earnings-monitor code list: at most MaxWatchlist
// entries, every entry a valid stock code. Duplicates are allowed.
func Watchlist(codes []string) error {
	if len(codes) > MaxWatchlist {
		return fetcher.NewValidationError(fmt.Sprintf("too many codes (%d, max %d)", len(codes), MaxWatchlist))
	}
	for _, code := range codes {
		if err := StockCode(code); err != nil {
			return err
		}
	}
	return nil
}

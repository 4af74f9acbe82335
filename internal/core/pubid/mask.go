package pubid

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Mask grammar, case-sensitive and brace-delimited:
//
//	{YYYY}  4-digit year
//	{YY}    2-digit year
//	{MM}    2-digit month (01-12)
//	{DD}    2-digit day (01-31)
//	{#}..{#####}  counter, zero-padded to the token's width
//
// Anything else, including unrecognized {...} sequences, is literal text.

// counterTokenRe matches a brace-delimited run of one or more '#'.
var counterTokenRe = regexp.MustCompile(`\{#+\}`)

// HasCounterToken reports whether template contains at least one counter
// token. Templates without counter tokens never consult the counter store.
func HasCounterToken(template string) bool {
	return counterTokenRe.MatchString(template)
}

// Expand substitutes all recognized tokens in template. Date tokens are
// resolved against now, captured once so every date token in the template
// reflects the same instant. Every counter token receives the same counter
// value, padded to each occurrence's own width. One logical sequence number,
// presented in different widths.
//
// Pure function, no I/O.
func Expand(template string, now time.Time, counter int64) string {
	out := expandDates(template, now)
	return counterTokenRe.ReplaceAllStringFunc(out, func(tok string) string {
		width := len(tok) - 2 // strip braces
		return fmt.Sprintf("%0*d", width, counter)
	})
}

// ExpandDates substitutes only the date tokens, leaving counter tokens and
// literals untouched. Used by callers that need the date-resolved template
// before a counter value is known.
func ExpandDates(template string, now time.Time) string {
	return expandDates(template, now)
}

func expandDates(template string, now time.Time) string {
	r := strings.NewReplacer(
		"{YYYY}", now.Format("2006"),
		"{YY}", now.Format("06"),
		"{MM}", now.Format("01"),
		"{DD}", now.Format("02"),
	)
	return r.Replace(template)
}

// IsValidMask is the advisory check used by configuration screens.
// A mask is valid when it is non-empty after trimming; pure literal masks
// are allowed even though they produce identical identifiers on every call.
func IsValidMask(template string) bool {
	return strings.TrimSpace(template) != ""
}

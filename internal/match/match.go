// Package match implements whole-word keyword scanning over document text.
package match

import (
	"context"
	"regexp"
	"time"

	"github.com/zjrosen/glimmer/internal/cachemanager"
	"github.com/zjrosen/glimmer/internal/log"
)

// MaxDocumentLen is the size guard callers apply before scanning.
// Documents longer than this are skipped entirely by the refresh
// engine; the finder itself imposes no limit.
const MaxDocumentLen = 100_000

// patternTTL keeps compiled patterns warm across refreshes without
// letting abandoned keyword sets pin memory forever.
const patternTTL = 10 * time.Minute

// Range is a half-open [Start, End) byte range into the scanned text.
type Range struct {
	Start int
	End   int
}

// KeywordRanges pairs a keyword with its occurrences, in scan order.
// Keywords with zero occurrences never appear in a result.
type KeywordRanges struct {
	Keyword string
	Ranges  []Range
}

// Finder scans text for whole-word keyword occurrences. Compiled
// patterns are cached per keyword.
type Finder struct {
	patterns cachemanager.CacheManager[string, *regexp.Regexp]
}

// NewFinder creates a Finder with its own pattern cache.
func NewFinder() *Finder {
	return &Finder{
		patterns: cachemanager.NewInMemoryCacheManager[string, *regexp.Regexp](
			"match-patterns", patternTTL, cachemanager.DefaultCleanupInterval),
	}
}

// Ranges scans text for each keyword in order and returns the non-empty
// occurrence lists, preserving the supplied keyword order. Matching is
// case-sensitive and whole-word: a keyword never matches as a substring
// of a longer identifier. Keywords are escaped before compilation, so
// regex metacharacters match literally. Empty keywords are skipped.
func (f *Finder) Ranges(ctx context.Context, text string, kws []string) []KeywordRanges {
	if text == "" || len(kws) == 0 {
		return nil
	}

	result := make([]KeywordRanges, 0, len(kws))
	for _, kw := range kws {
		if kw == "" {
			continue
		}
		re, err := f.pattern(ctx, kw)
		if err != nil {
			log.ErrorErr(log.CatMatch, "keyword pattern compile failed", err, "keyword", kw)
			continue
		}

		locs := re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}

		ranges := make([]Range, len(locs))
		for i, loc := range locs {
			ranges[i] = Range{Start: loc[0], End: loc[1]}
		}
		result = append(result, KeywordRanges{Keyword: kw, Ranges: ranges})
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

func (f *Finder) pattern(ctx context.Context, kw string) (*regexp.Regexp, error) {
	if re, ok := f.patterns.Get(ctx, kw); ok {
		return re, nil
	}

	re, err := regexp.Compile(boundaryPattern(kw))
	if err != nil {
		return nil, err
	}
	f.patterns.Set(ctx, kw, re, patternTTL)
	return re, nil
}

// boundaryPattern builds the whole-word pattern for a keyword. The
// keyword text is quoted so metacharacters match literally, and \b is
// asserted only on ends that are word characters: a \b next to
// punctuation (as in "c++") can never match, so those ends are left
// open.
func boundaryPattern(kw string) string {
	pat := regexp.QuoteMeta(kw)
	runes := []rune(kw)
	if isWordRune(runes[0]) {
		pat = `\b` + pat
	}
	if isWordRune(runes[len(runes)-1]) {
		pat += `\b`
	}
	return pat
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

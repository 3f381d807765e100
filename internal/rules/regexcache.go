package rules

import (
	"regexp"
	"sync"
)

var (
	regexCacheMu sync.Mutex
	regexCache   = make(map[string]*regexp.Regexp)
)

// regexpCompileCached compiles pattern once and reuses the result; ignore
// patterns are evaluated against every candidate file, so recompiling per
// call would be wasteful for large trees.
func regexpCompileCached(pattern string) (*regexp.Regexp, error) {
	regexCacheMu.Lock()
	defer regexCacheMu.Unlock()

	if re, ok := regexCache[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	regexCache[pattern] = re
	return re, nil
}

// Package content holds the invocation-scoped file content cache. Per
// spec's Non-goal on cross-run/incremental caching, the cache never
// touches disk and is discarded at the end of one run; it exists purely
// so evaluators that need file text (file_size, forbidden_keywords,
// forbidden_patterns, barrel_purity, documentation_required,
// class_complexity, granularity_metric) don't each
// re-read the same file from the filesystem.
package content

import "nooa/pkg/lint"

// Cache is a read-only, fully-populated-up-front map from project-relative
// path to file content. It is built once by Fill and shared read-only by
// every rule evaluator, which is what allows evaluators to run concurrently
// without locking (§5: "cache-only discipline").
type Cache struct {
	files map[string]string
}

// Fill reads every path in paths through reader and returns a populated
// Cache. A file that fails to read is simply absent from the cache; Get
// reports that absence via its bool return rather than surfacing an error,
// since a handful of unreadable files (e.g. broken symlinks) should not
// abort the whole run.
func Fill(reader lint.FileReader, paths []string) *Cache {
	files := make(map[string]string, len(paths))
	for _, p := range paths {
		if text, err := reader.ReadFile(p); err == nil {
			files[p] = text
		}
	}
	return &Cache{files: files}
}

// Get returns the cached content for path and whether it was present.
// Implementations must never fall back to reading the filesystem here;
// a miss means the file was never filled, not that it should be fetched.
func (c *Cache) Get(path string) (string, bool) {
	text, ok := c.files[path]
	return text, ok
}

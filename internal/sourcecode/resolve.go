package sourcecode

import "path"

// candidateExtensions and candidateIndexNames mirror the module resolution
// a TypeScript bundler performs for a bare relative specifier: try the
// literal path, then each extension appended, then each as an index file
// inside a directory of that name.
var candidateExtensions = []string{"", ".ts", ".tsx", ".d.ts"}
var candidateIndexNames = []string{"index.ts", "index.tsx"}

// resolver resolves import specifiers against a fixed project file set.
// Unresolvable specifiers (bare package names, or relative paths that
// don't land on an enumerated file) are simply dropped, per §3's
// invariant that Symbol.Dependencies only ever names paths present in the
// parsed symbol set.
type resolver struct {
	known map[string]struct{}
}

func newResolver(files []string) *resolver {
	known := make(map[string]struct{}, len(files))
	for _, f := range files {
		known[f] = struct{}{}
	}
	return &resolver{known: known}
}

// resolve maps specifier, written inside fromFile, to a project-relative
// path in the known file set. Only relative specifiers ("./x", "../x")
// are considered; bare package specifiers never resolve.
func (r *resolver) resolve(fromFile, specifier string) (string, bool) {
	if len(specifier) == 0 || specifier[0] != '.' {
		return "", false
	}

	dir := path.Dir(fromFile)
	joined := path.Clean(path.Join(dir, specifier))

	for _, ext := range candidateExtensions {
		candidate := joined + ext
		if _, ok := r.known[candidate]; ok {
			return candidate, true
		}
	}
	for _, indexName := range candidateIndexNames {
		candidate := path.Join(joined, indexName)
		if _, ok := r.known[candidate]; ok {
			return candidate, true
		}
	}
	return "", false
}

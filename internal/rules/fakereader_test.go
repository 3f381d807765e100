package rules

import "fmt"

// fakeReader is an in-memory lint.FileReader for tests that need a
// content.Cache without touching the filesystem.
type fakeReader map[string]string

func (f fakeReader) ReadFile(relativePath string) (string, error) {
	text, ok := f[relativePath]
	if !ok {
		return "", fmt.Errorf("fakeReader: no content for %q", relativePath)
	}
	return text, nil
}

type fakeDirChecker map[string]bool

func (f fakeDirChecker) DirExists(relativePath string) bool {
	return f[relativePath]
}

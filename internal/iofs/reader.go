package iofs

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Reader adapts afero.Fs to lint.FileReader/FileExistenceChecker/
// DirectoryExistenceChecker, rooted at one project directory so the rest
// of the engine only ever deals in project-relative paths.
type Reader struct {
	Fs   afero.Fs
	Root string
}

func NewReader(fs afero.Fs, root string) *Reader {
	return &Reader{Fs: fs, Root: root}
}

func (r *Reader) abs(relativePath string) string {
	return filepath.Join(r.Root, filepath.FromSlash(relativePath))
}

// ReadFile reads one project-relative file's full content.
func (r *Reader) ReadFile(relativePath string) (string, error) {
	data, err := afero.ReadFile(r.Fs, r.abs(relativePath))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FileExists reports whether relativePath names a regular file.
func (r *Reader) FileExists(relativePath string) bool {
	info, err := r.Fs.Stat(r.abs(relativePath))
	return err == nil && !info.IsDir()
}

// DirExists reports whether relativePath names a directory.
func (r *Reader) DirExists(relativePath string) bool {
	info, err := r.Fs.Stat(r.abs(relativePath))
	return err == nil && info.IsDir()
}

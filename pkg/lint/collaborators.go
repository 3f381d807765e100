package lint

// CodeParser produces the flat symbol list the rest of the engine analyzes.
// Implementations resolve imports/re-exports into intra-project paths; a
// dependency that cannot be resolved to a file in the project is dropped,
// never left dangling (§3 invariant: Symbol.Dependencies only ever names
// paths present in the parsed symbol set).
type CodeParser interface {
	Parse(projectRoot string, files []string) ([]Symbol, error)
}

// FileReader reads the full content of one project-relative file. It never
// falls back to any cache; it IS the thing that fills one.
type FileReader interface {
	ReadFile(relativePath string) (string, error)
}

// FileExistenceChecker reports whether a project-relative file path exists.
type FileExistenceChecker interface {
	FileExists(relativePath string) bool
}

// DirectoryExistenceChecker reports whether a project-relative directory
// path exists. Used by the required_structure rule (§4.4.11).
type DirectoryExistenceChecker interface {
	DirExists(relativePath string) bool
}

// Enumerator lists every candidate source file under a project root, as
// project-relative, forward-slash-normalized paths.
type Enumerator interface {
	Enumerate(projectRoot string) ([]string, error)
}

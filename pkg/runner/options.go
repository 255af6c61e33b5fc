// Package runner processes many dialect documents concurrently.
package runner

// Options controls file discovery and the worker pool.
type Options struct {
	// Paths are files or directories to process. Empty means ".".
	Paths []string

	// WorkingDir resolves relative Paths and anchors ignore patterns.
	// Empty means the process working directory.
	WorkingDir string

	// Extensions are the lowercase extensions, with leading dot, treated as
	// documents. Empty means DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are doublestar patterns, relative to WorkingDir, for files
	// and directories to skip. Patterns without a slash also match base names.
	ExcludeGlobs []string

	// FollowSymlinks walks into symlinked directories.
	FollowSymlinks bool

	// Jobs caps concurrent workers. Zero or negative means runtime.NumCPU().
	Jobs int
}

// DefaultExtensions returns the extensions discovered by default.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

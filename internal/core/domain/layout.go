package domain

import "path/filepath"

const (
	// CacheDirName is the name of the build cache directory at the project root.
	CacheDirName = ".cache"

	// ManifestFileName is the name of the manifest file inside the cache directory.
	ManifestFileName = "manifest.json"

	// ContentDirName holds one JSON entry per processed content hash.
	ContentDirName = "content"

	// ConversionsDirName is reserved for converted artifacts.
	ConversionsDirName = "conversions"

	// ContentSourceDir is the directory holding markdown sources.
	ContentSourceDir = "content"

	// TemplatesDir is the directory holding layout templates.
	TemplatesDir = "templates"

	// StaticDir is the directory holding static assets copied verbatim.
	StaticDir = "static"

	// PostsDir is the content sub-directory whose documents are listed on the index.
	PostsDir = "posts"

	// DefaultOutputDir is the output directory used when the config names none.
	DefaultOutputDir = "_site"

	// ConfigTOML is the preferred site configuration file.
	ConfigTOML = "config.toml"

	// ConfigYAML is the legacy site configuration file.
	ConfigYAML = "config.yaml"

	// SourceExt is the extension of content sources.
	SourceExt = ".md"

	// TemplateExt is the extension of layout templates.
	TemplateExt = ".html"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCachePath returns the cache directory for a project root.
func DefaultCachePath(root string) string {
	return filepath.Join(root, CacheDirName)
}

// DefaultManifestPath returns the manifest location for a project root.
// It joins .cache and manifest.json.
func DefaultManifestPath(root string) string {
	return filepath.Join(root, CacheDirName, ManifestFileName)
}

// DefaultContentCachePath returns the content cache directory for a project root.
// It joins .cache and content.
func DefaultContentCachePath(root string) string {
	return filepath.Join(root, CacheDirName, ContentDirName)
}

// DefaultConversionsPath returns the conversions directory for a project root.
// It joins .cache and conversions.
func DefaultConversionsPath(root string) string {
	return filepath.Join(root, CacheDirName, ConversionsDirName)
}

// Project locates the well-known directories of a site.
type Project struct {
	Root string
}

// NewProject resolves root to an absolute path with symlinks evaluated, so
// SourcePaths derived from it are stable across invocations.
func NewProject(root string) (Project, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return Project{}, err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return Project{}, err
	}
	return Project{Root: resolved}, nil
}

// ContentDir returns the markdown source directory.
func (p Project) ContentDir() string {
	return filepath.Join(p.Root, ContentSourceDir)
}

// TemplatesDir returns the layout template directory.
func (p Project) TemplatesDir() string {
	return filepath.Join(p.Root, TemplatesDir)
}

// StaticDir returns the static asset directory.
func (p Project) StaticDir() string {
	return filepath.Join(p.Root, StaticDir)
}

// CacheDir returns the build cache directory.
func (p Project) CacheDir() string {
	return DefaultCachePath(p.Root)
}

// OutputDir returns the absolute output directory for cfg.
func (p Project) OutputDir(cfg *SiteConfig) string {
	dir := DefaultOutputDir
	if cfg != nil && cfg.OutputDir != "" {
		dir = cfg.OutputDir
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(p.Root, dir)
}

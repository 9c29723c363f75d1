package domain

import "go.trai.ch/zerr"

var (
	// ErrFileHashFailed is returned when a source file cannot be read for fingerprinting.
	ErrFileHashFailed = zerr.New("failed to hash file")

	// ErrSourceWalkFailed is returned when the content directory cannot be enumerated.
	ErrSourceWalkFailed = zerr.New("failed to walk source directory")

	// ErrManifestReadFailed is returned when the manifest file exists but cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read cache manifest")

	// ErrManifestCorrupt is returned when the manifest file is not valid JSON.
	ErrManifestCorrupt = zerr.New("cache manifest is corrupt")

	// ErrManifestVersionMismatch is returned when the manifest was written by a different cache version.
	ErrManifestVersionMismatch = zerr.New("cache manifest version mismatch")

	// ErrManifestMarshalFailed is returned when the manifest cannot be encoded.
	ErrManifestMarshalFailed = zerr.New("failed to marshal cache manifest")

	// ErrManifestWriteFailed is returned when the manifest cannot be persisted.
	ErrManifestWriteFailed = zerr.New("failed to write cache manifest")

	// ErrCacheStructure is returned when the cache directory layout or manifest shape is invalid.
	ErrCacheStructure = zerr.New("invalid cache structure")

	// ErrCacheEntryCorrupt is returned when a content cache entry cannot be decoded.
	ErrCacheEntryCorrupt = zerr.New("content cache entry is corrupt")

	// ErrCacheEntryNotFound is returned when a content cache entry does not exist.
	ErrCacheEntryNotFound = zerr.New("content cache entry not found")

	// ErrCacheReadFailed is returned when a content cache entry exists but cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache entry")

	// ErrSerializationFailed is returned when a processed page cannot be encoded for the cache.
	ErrSerializationFailed = zerr.New("failed to serialize cache entry")

	// ErrCacheWriteFailed is returned when a content cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrCacheClearFailed is returned when the cache directory cannot be wiped.
	ErrCacheClearFailed = zerr.New("failed to clear cache")

	// ErrTemplateDirUnreadable is returned when the templates directory exists but cannot be scanned.
	ErrTemplateDirUnreadable = zerr.New("templates directory is unreadable")

	// ErrConfigNotFound is returned when neither config.toml nor config.yaml exists.
	ErrConfigNotFound = zerr.New("site configuration not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrContentProcessFailed is returned when a source document cannot be turned into a page.
	ErrContentProcessFailed = zerr.New("failed to process content")

	// ErrFrontMatterInvalid is returned when a document's front matter block is not valid YAML.
	ErrFrontMatterInvalid = zerr.New("invalid front matter")

	// ErrLayoutRenderFailed is returned when a layout template cannot be rendered.
	ErrLayoutRenderFailed = zerr.New("failed to render layout")

	// ErrUnsupportedFormat is returned when an output format has no generator.
	ErrUnsupportedFormat = zerr.New("unsupported output format")

	// ErrOutputWriteFailed is returned when a generated artifact cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output")

	// ErrOutputCleanFailed is returned when the output directory cannot be wiped.
	ErrOutputCleanFailed = zerr.New("failed to clean output directory")

	// ErrStaticCopyFailed is returned when static assets cannot be copied into the output.
	ErrStaticCopyFailed = zerr.New("failed to copy static assets")

	// ErrDependencyMissing is returned when a required build collaborator is unavailable.
	ErrDependencyMissing = zerr.New("required build dependency is missing")

	// ErrPartialBuild is returned when one or more files failed while the rest of the build completed.
	ErrPartialBuild = zerr.New("build completed with errors")

	// ErrBuildExecutionFailed is returned when the build could not complete.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start file watcher")

	// ErrScaffoldFailed is returned when project or document scaffolding cannot be written.
	ErrScaffoldFailed = zerr.New("failed to scaffold files")

	// ErrContentExists is returned when a new document would overwrite an existing one.
	ErrContentExists = zerr.New("content file already exists")

	// ErrInvalidContentName is returned when a title yields no usable file name.
	ErrInvalidContentName = zerr.New("invalid content name")

	// ErrChecksFailed is returned when at least one project check failed. The
	// individual results were already reported.
	ErrChecksFailed = zerr.New("project checks failed")

	// ErrConvertFailed is returned when a single-file conversion produced no output
	// for at least one format.
	ErrConvertFailed = zerr.New("conversion failed")
)

package config

// Recognized keys. Everything else is kept in SiteConfig.Extra.
const (
	keyTitle         = "title"
	keyURL           = "url"
	keyDescription   = "description"
	keyAuthor        = "author"
	keyOutputDir     = "output_dir"
	keyOutputFormats = "output_formats"
	keyIncremental   = "incremental"
	keyCache         = "cache"
	keyMaxMemoryMB   = "max_memory_mb"
	keyMaxAgeDays    = "max_age_days"
)

// sectionTables are TOML tables (or YAML mappings) whose keys are read as
// if they were written at the top level.
var sectionTables = []string{"site", "build"}

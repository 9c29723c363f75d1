// export_test.go exports private functions for white-box testing.
package logger

// Exported error formatting helpers.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

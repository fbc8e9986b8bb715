// internal/output/common.go
package output

// Supported output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// ValidFormat reports whether f names a supported output format.
func ValidFormat(f string) bool {
	switch f {
	case FormatText, FormatJSON, FormatJSONL:
		return true
	}
	return false
}

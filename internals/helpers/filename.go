// file: internals/helpers/filename.go
package helper

import "regexp"

var (
	nonAlnumRe      = regexp.MustCompile(`[^a-zA-Z0-9]`)
	underscoreRunRe = regexp.MustCompile(`_+`)
)

// SafeFileToken remplace tout caractère non alphanumérique par '_'.
func SafeFileToken(s string) string {
	return nonAlnumRe.ReplaceAllString(s, "_")
}

// CompactFileToken fait pareil puis fusionne les '_' consécutifs.
func CompactFileToken(s string) string {
	return underscoreRunRe.ReplaceAllString(SafeFileToken(s), "_")
}

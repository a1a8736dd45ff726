package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// orderPhotoPattern matches stored order photo names: 123.jpg, 123_1.jpg,
// 123_2.png and so on. The extension is case-insensitive; the id match is
// exact so order 1 never claims 12.jpg or 1_2.jpg's prefix.
var orderPhotoPattern = regexp.MustCompile(`^(\d+)(?:_(\d+))?\.(?i:jpg|jpeg|png|gif)$`)

// ParseOrderPhotoName extracts the owning order id (as the literal digit
// string) and the zero-based ordinal from a stored photo name. The bare
// unsuffixed form is ordinal 0.
func ParseOrderPhotoName(name string) (orderID string, ordinal int, ok bool) {
	m := orderPhotoPattern.FindStringSubmatch(name)
	if m == nil {
		return "", 0, false
	}
	if m[2] != "" {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return "", 0, false
		}
		ordinal = n
	}
	return m[1], ordinal, true
}

// BuildOrderPhotoName resolves the stored name for the given order, ordinal
// and extension (with leading dot). Ordinal 0 is the bare form.
func BuildOrderPhotoName(orderID uint, ordinal int, ext string) string {
	if ordinal == 0 {
		return fmt.Sprintf("%d%s", orderID, ext)
	}
	return fmt.Sprintf("%d_%d%s", orderID, ordinal, ext)
}

// FileExtension returns the substring after the last '.' including the dot,
// or empty if the name has no dot.
func FileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return filename[idx:]
}

// IsSafeFilename rejects names containing a parent-directory segment or a
// path separator
func IsSafeFilename(filename string) bool {
	if filename == "" {
		return false
	}
	return !strings.Contains(filename, "..") &&
		!strings.Contains(filename, "/") &&
		!strings.Contains(filename, "\\")
}

// =============================================================================
// Transaction Report Converter - Output File Helpers
// =============================================================================
//
// Helpers for resolving where a conversion artifact lands. Each flow carries
// a fixed default file name; the operator can point --out at a file, at a
// directory, or at a name pattern with placeholders.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ResolveOutputPath decides the artifact path for an invocation.
//
//   - out == ""            -> the flow's default name, in the working directory
//   - out is a directory   -> the flow's default name, inside that directory
//   - out contains "{"     -> treated as a name pattern (see ExpandNamePattern)
//   - otherwise            -> used verbatim
func ResolveOutputPath(out, defaultName, flowName string) string {
	if out == "" {
		return defaultName
	}
	if strings.Contains(out, "{") {
		return ExpandNamePattern(out, flowName)
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, defaultName)
	}
	return out
}

// ExpandNamePattern expands output name placeholders:
//
//	{uuid}      a random UUID
//	{timestamp} the current time as YYYYMMDD_HHMMSS
//	{flow}      the flow name
//
// Example: "reports/{flow}_{timestamp}.xlsx".
func ExpandNamePattern(pattern, flowName string) string {
	r := strings.NewReplacer(
		"{uuid}", uuid.NewString(),
		"{timestamp}", time.Now().Format("20060102_150405"),
		"{flow}", flowName,
	)
	return r.Replace(pattern)
}

// EnsureParentDir creates the parent directory of path if it is missing.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Package paths provides centralized path handling for appalias.
// It validates application bundle paths and computes locations inside the
// fixed bundle layout the tool produces.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/appalias/pkg/errors"
)

// Fixed bundle layout.
// IMPORTANT: These constants define the layout of generated alias bundles and
// are NOT user-configurable. The launcher script compiled into every alias
// bundle resolves the embedded alias at this exact relative path, so the
// values must remain consistent across installations.
const (
	// AppSuffix is the required extension for application bundles
	AppSuffix = ".app"

	// ContentsDir is the top-level directory of a bundle
	ContentsDir = "Contents"

	// ResourcesDir is the resources directory inside Contents
	ResourcesDir = "Resources"

	// AliasDirName is the directory holding the embedded alias
	AliasDirName = "Alias"

	// AliasFileName is the fixed name of the embedded alias
	AliasFileName = "AppAlias"

	// IconFileName is the icon written by osacompile into new bundles
	IconFileName = "applet.icns"

	// IconExt is appended to declared icon names lacking an extension
	IconExt = ".icns"

	// InfoPlistName is the bundle manifest file
	InfoPlistName = "Info.plist"
)

// HasAppSuffix reports whether path names an application bundle
func HasAppSuffix(path string) bool {
	return strings.HasSuffix(path, AppSuffix)
}

// Normalize expands a leading ~ and resolves path to absolute form.
// All bundle components take absolute paths at their boundary; this is the
// single place relative input is converted.
func Normalize(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to determine home directory")
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve %q to an absolute path", path)
	}
	return filepath.Clean(abs), nil
}

// Resources returns the Contents/Resources directory of a bundle
func Resources(bundle string) string {
	return filepath.Join(bundle, ContentsDir, ResourcesDir)
}

// AliasDir returns the directory holding the embedded alias
func AliasDir(bundle string) string {
	return filepath.Join(Resources(bundle), AliasDirName)
}

// AliasFile returns the fixed path of the embedded alias inside a bundle
func AliasFile(bundle string) string {
	return filepath.Join(AliasDir(bundle), AliasFileName)
}

// IconFile returns the path of the bundle's applet icon
func IconFile(bundle string) string {
	return filepath.Join(Resources(bundle), IconFileName)
}

// Resource returns the path of a named file in the bundle's resources
func Resource(bundle, name string) string {
	return filepath.Join(Resources(bundle), name)
}

// InfoPlist returns the path of the bundle's manifest
func InfoPlist(bundle string) string {
	return filepath.Join(bundle, ContentsDir, InfoPlistName)
}

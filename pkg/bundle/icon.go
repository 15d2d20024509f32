package bundle

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/appalias/pkg/errors"
	"github.com/arthur-debert/appalias/pkg/logging"
	"github.com/arthur-debert/appalias/pkg/osarun"
	"github.com/arthur-debert/appalias/pkg/paths"
)

// iconKey is the Info.plist entry naming a bundle's custom icon
const iconKey = "CFBundleIconFile"

// IconCopier copies the source bundle's declared icon over the default icon
// osacompile wrote into the target bundle.
type IconCopier struct {
	runner osarun.Runner
	tool   string
	fs     afero.Fs
	logger zerolog.Logger
}

// NewIconCopier creates an IconCopier invoking the PlistBuddy binary at toolPath
func NewIconCopier(runner osarun.Runner, toolPath string, fs afero.Fs) *IconCopier {
	return &IconCopier{
		runner: runner,
		tool:   toolPath,
		fs:     fs,
		logger: logging.GetLogger("bundle.icon"),
	}
}

// Copy looks up the source bundle's declared icon and copies it over the
// target's applet.icns. A source bundle with no declared icon is a no-op
// success: the target keeps the compiler's default icon.
func (ic *IconCopier) Copy(ctx context.Context, source, target string) error {
	name, err := ic.DeclaredIconFile(ctx, source)
	if err != nil {
		return err
	}
	if name == "" {
		ic.logger.Debug().Str("source", source).Msg("No custom icon declared, keeping default")
		return nil
	}

	if filepath.Ext(name) == "" {
		name += paths.IconExt
	}

	srcIcon := paths.Resource(source, name)
	dstIcon := paths.IconFile(target)

	if _, err := ic.fs.Stat(srcIcon); err != nil {
		return errors.Wrapf(err, errors.ErrIconCopy, "declared icon %s not found", srcIcon)
	}

	if err := ic.fs.Remove(dstIcon); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrIconCopy, "failed to remove default icon %s", dstIcon)
	}

	ic.logger.Info().Str("icon", srcIcon).Str("target", dstIcon).Msg("Copying custom icon")

	if err := ic.copyFile(srcIcon, dstIcon); err != nil {
		return errors.Wrapf(err, errors.ErrIconCopy, "failed to copy %s to %s", srcIcon, dstIcon)
	}

	return nil
}

// DeclaredIconFile returns the icon filename declared in the source bundle's
// manifest, or "" when none is declared. PlistBuddy is asked first; a
// missing-key failure means no icon, and only when the tool itself is
// unavailable or fails for another reason is the manifest parsed directly.
func (ic *IconCopier) DeclaredIconFile(ctx context.Context, source string) (string, error) {
	plist := paths.InfoPlist(source)

	out, err := ic.runner.Run(ctx, ic.tool, "-c", "Print :"+iconKey, plist)
	if err == nil {
		return strings.TrimSpace(out), nil
	}
	if keyAbsent(err) {
		// PlistBuddy read the manifest and found no icon entry.
		return "", nil
	}

	ic.logger.Debug().Err(err).Str("plist", plist).Msg("PlistBuddy lookup failed, parsing manifest")

	return ic.iconFromManifest(plist)
}

// keyAbsent reports whether a PlistBuddy failure means the manifest has no
// icon entry, as opposed to the tool being unavailable or the file
// unreadable. PlistBuddy prints "Does Not Exist" for missing keys.
func keyAbsent(err error) bool {
	if details := errors.GetErrorDetails(err); details != nil {
		if stderr, ok := details["stderr"].(string); ok && strings.Contains(stderr, "Does Not Exist") {
			return true
		}
	}
	return strings.Contains(err.Error(), "Does Not Exist")
}

// iconFromManifest reads the icon name out of the plist XML. The value of a
// plist dict key is the element following it. Manifests that are not XML
// (binary plists) yield no icon rather than an error; only an unreadable
// file fails.
func (ic *IconCopier) iconFromManifest(plist string) (string, error) {
	data, err := afero.ReadFile(ic.fs, plist)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrIconLookup, "failed to read manifest %s", plist)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		ic.logger.Debug().Err(err).Str("plist", plist).Msg("Manifest is not XML, assuming no declared icon")
		return "", nil
	}

	root := doc.SelectElement("plist")
	if root == nil {
		return "", nil
	}
	dict := root.SelectElement("dict")
	if dict == nil {
		return "", nil
	}

	children := dict.ChildElements()
	for i, el := range children {
		if el.Tag == "key" && strings.TrimSpace(el.Text()) == iconKey && i+1 < len(children) {
			return strings.TrimSpace(children[i+1].Text()), nil
		}
	}

	return "", nil
}

func (ic *IconCopier) copyFile(src, dst string) error {
	in, err := ic.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := ic.fs.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

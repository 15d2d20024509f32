package bundle

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/appalias/pkg/errors"
	"github.com/arthur-debert/appalias/pkg/logging"
	"github.com/arthur-debert/appalias/pkg/osarun"
	"github.com/arthur-debert/appalias/pkg/paths"
)

// Compiler produces an application bundle at the target path by compiling a
// small launcher script with osacompile.
type Compiler struct {
	runner osarun.Runner
	tool   string
	logger zerolog.Logger
}

// NewCompiler creates a Compiler invoking the osacompile binary at toolPath
func NewCompiler(runner osarun.Runner, toolPath string) *Compiler {
	return &Compiler{
		runner: runner,
		tool:   toolPath,
		logger: logging.GetLogger("bundle.compiler"),
	}
}

// LauncherScript returns the AppleScript body compiled into every alias
// bundle. At launch the applet resolves its own bundle path and opens the
// embedded alias at the fixed relative location, which sends the open on to
// the aliased application.
func LauncherScript() string {
	rel := strings.Join([]string{
		paths.ContentsDir, paths.ResourcesDir, paths.AliasDirName, paths.AliasFileName,
	}, "/")
	return `set bundlePath to POSIX path of (path to me)
set aliasFile to POSIX file (bundlePath & ` + osarun.QuoteAppleScript(rel) + `)
tell application "Finder" to open aliasFile
`
}

// Compile writes the launcher script to a scoped temporary file, compiles it
// into an application bundle at target, and verifies the bundle exists.
// target must be absolute and must not exist yet; the caller validates both.
func (c *Compiler) Compile(ctx context.Context, target string) error {
	tmp, err := os.CreateTemp("", "appalias-launcher-*.applescript")
	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to create launcher script file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(LauncherScript()); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write launcher script")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to close launcher script file")
	}

	c.logger.Info().Str("target", target).Msg("Compiling alias bundle")

	if _, err := c.runner.Run(ctx, c.tool, "-o", target, tmp.Name()); err != nil {
		return errors.Wrapf(err, errors.ErrBundleCompile, "failed to compile bundle at %s", target)
	}

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrBundleMissing, "no bundle found at %s after compilation", target)
	}

	return nil
}

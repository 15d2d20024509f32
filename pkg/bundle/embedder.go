package bundle

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/appalias/pkg/errors"
	"github.com/arthur-debert/appalias/pkg/logging"
	"github.com/arthur-debert/appalias/pkg/osarun"
	"github.com/arthur-debert/appalias/pkg/paths"
)

// Embedder places a Finder alias to the source application inside the
// target bundle at the fixed relative path.
type Embedder struct {
	runner osarun.Runner
	tool   string
	fs     afero.Fs
	logger zerolog.Logger
}

// NewEmbedder creates an Embedder invoking the osascript binary at toolPath
func NewEmbedder(runner osarun.Runner, toolPath string, fs afero.Fs) *Embedder {
	return &Embedder{
		runner: runner,
		tool:   toolPath,
		fs:     fs,
		logger: logging.GetLogger("bundle.embedder"),
	}
}

// Embed creates Contents/Resources/Alias inside target, asks Finder to make
// an alias to source in it, and renames the produced entry to AppAlias.
// Both paths must be absolute. Finder producing zero or more than one entry
// is an explicit error.
func (e *Embedder) Embed(ctx context.Context, source, target string) error {
	aliasDir := paths.AliasDir(target)

	// Mkdir, not MkdirAll: the compiler just created Contents/Resources,
	// and a pre-existing Alias directory means something else owns it.
	if err := e.fs.Mkdir(aliasDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create alias directory %s", aliasDir)
	}

	script := fmt.Sprintf(
		"tell application \"Finder\" to make new alias file at (POSIX file %s as alias) to (POSIX file %s as alias)",
		osarun.QuoteAppleScript(aliasDir),
		osarun.QuoteAppleScript(source),
	)

	e.logger.Info().Str("source", source).Str("target", target).Msg("Embedding alias")

	if _, err := e.runner.Run(ctx, e.tool, "-e", script); err != nil {
		return errors.Wrapf(err, errors.ErrAliasCreate, "failed to create alias to %s", source)
	}

	entries, err := afero.ReadDir(e.fs, aliasDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to list alias directory %s", aliasDir)
	}
	if len(entries) != 1 {
		return errors.Newf(errors.ErrAliasAmbiguous,
			"expected exactly one entry in %s after alias creation, found %d", aliasDir, len(entries)).
			WithDetail("entries", len(entries))
	}

	produced := filepath.Join(aliasDir, entries[0].Name())
	dest := paths.AliasFile(target)
	if produced == dest {
		return nil
	}

	if err := e.fs.Rename(produced, dest); err != nil {
		return errors.Wrapf(err, errors.ErrAliasCreate, "failed to rename %s to %s", produced, dest)
	}

	return nil
}

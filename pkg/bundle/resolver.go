package bundle

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/appalias/pkg/errors"
	"github.com/arthur-debert/appalias/pkg/logging"
	"github.com/arthur-debert/appalias/pkg/osarun"
	"github.com/arthur-debert/appalias/pkg/paths"
)

// Resolver reads back the original path an alias bundle points at.
type Resolver struct {
	runner osarun.Runner
	tool   string
	logger zerolog.Logger
}

// NewResolver creates a Resolver invoking the osascript binary at toolPath
func NewResolver(runner osarun.Runner, toolPath string) *Resolver {
	return &Resolver{
		runner: runner,
		tool:   toolPath,
		logger: logging.GetLogger("bundle.resolver"),
	}
}

// Resolve asks Finder for the original item of the alias embedded in the
// target bundle and returns its POSIX path. A broken alias, a non-alias
// entry and a failed automation run all surface as ErrAliasResolve; the
// underlying cause is only logged.
func (r *Resolver) Resolve(ctx context.Context, target string) (string, error) {
	aliasFile := paths.AliasFile(target)

	script := fmt.Sprintf(`tell application "Finder"
	set aliasItem to (POSIX file %s) as alias
	if kind of aliasItem is "Alias" then
		return POSIX path of ((original item of aliasItem) as alias)
	end if
end tell`, osarun.QuoteAppleScript(aliasFile))

	out, err := r.runner.Run(ctx, r.tool, "-e", script)
	if err != nil {
		r.logger.Debug().Err(err).Str("target", target).Msg("Alias resolution failed")
		return "", errors.Wrapf(err, errors.ErrAliasResolve, "could not resolve alias in %s", target)
	}
	if out == "" {
		return "", errors.Newf(errors.ErrAliasResolve, "could not resolve alias in %s", target)
	}

	return out, nil
}

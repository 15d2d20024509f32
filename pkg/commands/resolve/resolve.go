// Package resolve implements the target-resolution command.
package resolve

import (
	"context"

	"github.com/arthur-debert/appalias/pkg/bundle"
	"github.com/arthur-debert/appalias/pkg/config"
	"github.com/arthur-debert/appalias/pkg/logging"
	"github.com/arthur-debert/appalias/pkg/osarun"
	"github.com/arthur-debert/appalias/pkg/paths"
)

// Options defines the options for the ResolveTarget command.
type Options struct {
	// Target is the alias bundle to inspect.
	Target string

	// Config and Runner default to the real implementations when nil.
	Config *config.Config
	Runner osarun.Runner
}

// Result holds the resolved original path.
type Result struct {
	Target       string
	OriginalPath string
}

// ResolveTarget prints back the original application path the alias bundle
// at Target points to.
func ResolveTarget(ctx context.Context, opts Options) (*Result, error) {
	log := logging.GetLogger("commands.resolve")
	log.Debug().Str("command", "ResolveTarget").Str("target", opts.Target).Msg("Executing command")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	runner := opts.Runner
	if runner == nil {
		runner = osarun.New()
	}

	target, err := paths.Normalize(opts.Target)
	if err != nil {
		return nil, err
	}

	resolver := bundle.NewResolver(runner, cfg.Tools.Osascript)
	original, err := resolver.Resolve(ctx, target)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "ResolveTarget").Str("original", original).Msg("Command finished")
	return &Result{Target: target, OriginalPath: original}, nil
}

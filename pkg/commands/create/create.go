// Package create implements the alias-bundle creation command.
package create

import (
	"context"
	"os"

	"github.com/spf13/afero"

	"github.com/arthur-debert/appalias/pkg/bundle"
	"github.com/arthur-debert/appalias/pkg/config"
	"github.com/arthur-debert/appalias/pkg/errors"
	"github.com/arthur-debert/appalias/pkg/logging"
	"github.com/arthur-debert/appalias/pkg/osarun"
	"github.com/arthur-debert/appalias/pkg/paths"
)

// Options defines the options for the CreateAlias command.
type Options struct {
	// Source is the path of the application to alias.
	Source string
	// Target is the path of the alias bundle to create.
	Target string
	// Force removes an existing bundle at Target before creating.
	Force bool
	// DryRun logs the planned steps without mutating anything.
	DryRun bool

	// Config, Runner and FS default to the real implementations when nil.
	Config *config.Config
	Runner osarun.Runner
	FS     afero.Fs
}

// Result describes a completed (or planned, under DryRun) creation.
type Result struct {
	// Source and Target in absolute form.
	Source string
	Target string
	// AliasFile is the fixed path of the embedded alias inside Target.
	AliasFile string
	// DryRun reports whether anything was actually created.
	DryRun bool
}

// CreateAlias builds an alias bundle at Target that redirects to Source:
// compile the launcher applet, embed the Finder alias, copy the custom icon.
func CreateAlias(ctx context.Context, opts Options) (*Result, error) {
	log := logging.GetLogger("commands.create")
	log.Debug().Str("command", "CreateAlias").Str("source", opts.Source).Str("target", opts.Target).Msg("Executing command")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	runner := opts.Runner
	if runner == nil {
		runner = osarun.New()
	}
	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	// 1. Normalize and validate both paths before any side effect.
	source, err := paths.Normalize(opts.Source)
	if err != nil {
		return nil, err
	}
	target, err := paths.Normalize(opts.Target)
	if err != nil {
		return nil, err
	}

	if !paths.HasAppSuffix(source) || !paths.HasAppSuffix(target) {
		return nil, errors.Newf(errors.ErrNotAppBundle, "both paths must end in %s", paths.AppSuffix)
	}

	if _, err := fs.Stat(source); err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "source application %s not found", source)
	}

	if _, err := fs.Stat(target); err == nil {
		if !opts.Force {
			return nil, errors.Newf(errors.ErrTargetExists, "target %s already exists", target)
		}
		if !opts.DryRun {
			log.Info().Str("target", target).Msg("Removing existing target bundle")
			if err := fs.RemoveAll(target); err != nil {
				return nil, errors.Wrapf(err, errors.ErrTargetExists, "failed to remove existing target %s", target)
			}
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to stat target %s", target)
	}

	result := &Result{
		Source:    source,
		Target:    target,
		AliasFile: paths.AliasFile(target),
		DryRun:    opts.DryRun,
	}

	if opts.DryRun {
		log.Info().Str("target", target).Msg("Dry run: would compile launcher bundle")
		log.Info().Str("source", source).Msg("Dry run: would embed Finder alias")
		log.Info().Str("source", source).Msg("Dry run: would copy declared icon")
		return result, nil
	}

	// 2. Compile the launcher applet into the target bundle.
	compiler := bundle.NewCompiler(runner, cfg.Tools.Osacompile)
	if err := compiler.Compile(ctx, target); err != nil {
		return nil, err
	}

	// 3. Embed the Finder alias pointing at the source application.
	embedder := bundle.NewEmbedder(runner, cfg.Tools.Osascript, fs)
	if err := embedder.Embed(ctx, source, target); err != nil {
		return nil, err
	}

	// 4. Copy the source's declared icon over the default applet icon.
	copier := bundle.NewIconCopier(runner, cfg.Tools.PlistBuddy, fs)
	if err := copier.Copy(ctx, source, target); err != nil {
		return nil, err
	}

	log.Info().Str("command", "CreateAlias").Str("target", target).Msg("Command finished")
	return result, nil
}

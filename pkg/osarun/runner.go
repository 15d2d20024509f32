// Package osarun runs the external macOS tools appalias delegates to:
// osacompile, osascript and PlistBuddy. Every invocation is synchronous and
// blocking; callers bound it with the context they pass in.
package osarun

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/appalias/pkg/errors"
	"github.com/arthur-debert/appalias/pkg/logging"
)

// Runner executes an external tool and returns its trimmed standard output
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// execRunner is the Runner backed by os/exec
type execRunner struct {
	logger zerolog.Logger
}

// New returns a Runner that invokes tools on the host system
func New() Runner {
	return &execRunner{logger: logging.GetLogger("osarun")}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())

	if err != nil {
		r.logger.Debug().
			Str("tool", name).
			Str("stderr", strings.TrimSpace(stderr.String())).
			Err(err).
			Msg("Tool invocation failed")

		if stderrors.Is(err, exec.ErrNotFound) {
			return out, errors.Wrapf(err, errors.ErrToolMissing, "tool %q not found", name).
				WithDetail("tool", name)
		}
		return out, errors.Wrapf(err, errors.ErrToolRun, "tool %q failed", name).
			WithDetail("tool", name).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}

	return out, nil
}

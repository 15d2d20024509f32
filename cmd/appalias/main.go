package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/appalias/pkg/errors"
	"github.com/arthur-debert/appalias/pkg/logging"
	"github.com/arthur-debert/appalias/pkg/style"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logger := logging.GetLogger("main")
		logger.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Err(err).
			Msg("Command failed")
		fmt.Fprintln(os.Stderr, style.Error("Error: "+err.Error()))
		os.Exit(1)
	}
}

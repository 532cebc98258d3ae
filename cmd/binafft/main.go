// Command binafft benchmarks the radix-2 transforms, verifies them under
// concurrent use and prints a sample transform.
package main

import (
	"context"
	"os"

	"github.com/cwbudde/binafft/internal/app"
	apperrors "github.com/cwbudde/binafft/internal/errors"
)

func main() {
	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}

		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(apperrors.ExitCode(err))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}

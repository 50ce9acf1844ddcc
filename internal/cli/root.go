package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hailam/randfile/internal/adapters/ascii"
	"github.com/hailam/randfile/internal/adapters/progress"
	adapterutils "github.com/hailam/randfile/internal/adapters/utils"
	"github.com/hailam/randfile/internal/application"
	"github.com/hailam/randfile/internal/config"
	"github.com/hailam/randfile/internal/logging"
	"github.com/hailam/randfile/internal/ports"
	"github.com/hailam/randfile/internal/utils"
)

const nameLength = 10

const rootLongDesc = `randfile writes a file of random letters and digits of (at least) the
requested size. It is meant for preparing test data, e.g. upload payloads
for load-testing tools.

Targets above 50MB are written in 10MB chunks with progress output; smaller
targets are written in 4KB chunks. The final chunk is not trimmed, so the file
may be larger than requested by up to one chunk.`

// NewRootCommand builds the randfile command.
func NewRootCommand() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "randfile",
		Short: "Generates a file of random ASCII content.",
		Long:  rootLongDesc,
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.PersistentStartupProcessFlags()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Errors past flag parsing are not usage errors.
			cmd.SilenceUsage = true
			return run(cmd.OutOrStdout(), os.Stderr, config.Load())
		},
		Example: `  randfile -n payload.dat -k 50mb
  RANDFILE_SIZE=1gb randfile`,
	}
	if err := config.AddRootFlags(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

// run generates one file. Progress lines go to stdout; the spinner, when
// enabled, draws on spinnerOut.
func run(stdout io.Writer, spinnerOut *os.File, opts config.Options) error {
	rng := utils.NewRand(opts.Seed)

	name := opts.Name
	if name == "" {
		name = utils.RandName(rng, nameLength)
	}

	var reporter ports.ProgressReporter = progress.NewPrinter(stdout)
	if opts.Spinner {
		reporter = progress.NewSpinner(spinnerOut)
	}

	// --- Composition Root ---
	generator := ascii.New(rng, ascii.WithProgress(reporter))
	sizeParser := adapterutils.NewUnitSizeParser()
	fileService := application.NewFileService(generator, sizeParser, stdout)

	logger := logging.GetLogger()
	logger.Debug().Str("name", name).Str("size", opts.Size).Uint64("seed", opts.Seed).Msg("Config")
	_, err := fileService.CreateFile(name, opts.Size)
	return err
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	logging.SetupLogger()
	cmd, err := NewRootCommand()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cmd.Execute(); err != nil {
		// Cobra prints errors automatically, but we exit non-zero
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hailam/fillfile/internal/adapters/disk"
	"github.com/hailam/fillfile/internal/adapters/factory"
	"github.com/hailam/fillfile/internal/adapters/random"
	adapterutils "github.com/hailam/fillfile/internal/adapters/utils"
	"github.com/hailam/fillfile/internal/adapters/words"
	"github.com/hailam/fillfile/internal/application"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// DefaultPath is used when --path is not given. It needs an extension to
// pass path validation.
const DefaultPath = "output.bin"

type options struct {
	path    string
	ascii   bool
	lorem   bool
	seed    int64
	verbose int
	quiet   bool
}

// NewRootCommand builds the fillfile command. Nothing is wired until the
// command runs, so flags such as --seed reach the adapters.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "fillfile <size>",
		Short: "Generates a file of a specific size.",
		Long: `fillfile writes a single file of exactly the requested size.

The size is a whole number followed by a unit: b, kb, mb or gb (any case,
1kb = 1024 bytes), e.g. 512b, 10mb, 2GB.

The file is zero-filled unless --ascii (random bytes in the range 21..125)
or --lorem (lorem ipsum text) is passed. The two flags are exclusive.`,
		Example: `  fillfile 10mb -p data/blob.bin
  fillfile 1kb --ascii -p noise.txt
  fillfile 64kb --lorem --seed 7 -p words.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	addFlags(cmd.Flags(), opts)
	return cmd
}

func addFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVarP(&opts.path, "path", "p", DefaultPath, "Path to the output file; parent directories are created")
	flags.BoolVar(&opts.ascii, "ascii", false, "Fill with random bytes instead of zeros")
	flags.BoolVar(&opts.lorem, "lorem", false, "Fill with lorem ipsum text instead of zeros")
	flags.Int64Var(&opts.seed, "seed", 0, "Seed for --ascii and --lorem output (0 picks a random seed)")
	flags.CountVarP(&opts.verbose, "verbose", "v", "Increase logging verbosity (repeatable)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Silence all logging")
}

func run(cmd *cobra.Command, opts *options, sizeExpr string) error {
	stderr := cmd.ErrOrStderr()
	logger := newLogger(stderr, opts.verbose, opts.quiet)

	// --- Composition Root: Initialize Adapters and Core Logic ---
	service := application.NewFileService(
		factory.NewStaticSynthesizerFactory(random.New(opts.seed), words.New(opts.seed)),
		adapterutils.NewUtilSizeParser(),
		disk.New(),
		logger,
	)

	stop := startProgress(stderr, opts.quiet, fmt.Sprintf(" Generating %s", opts.path))
	written, err := service.CreateFile(application.Request{
		Path:  opts.path,
		Size:  sizeExpr,
		Ascii: opts.ascii,
		Lorem: opts.lorem,
	})
	stop()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated %s (%s)\n", opts.path, humanize.IBytes(written))
	return nil
}

// Execute runs the command with args and returns the process exit code.
// Errors are printed to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		printError(stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}

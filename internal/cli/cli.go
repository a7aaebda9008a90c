package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/gokickstart/internal/app"
	"github.com/specialistvlad/gokickstart/internal/hclconfig"
	"github.com/specialistvlad/gokickstart/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// rootFlags holds the raw values of the persistent flags.
type rootFlags struct {
	configPath          string
	logFormat           string
	logLevel            string
	version             string
	followIncludes      bool
	missingIncludeFatal bool
	keepComments        bool
	maskAllExcept       []string
}

// config turns the flags into an app.Config. Only flags the user actually
// set override the settings file.
func (f *rootFlags) config(flags *pflag.FlagSet) (*app.Config, error) {
	cfg := app.Config{
		ConfigPath: f.configPath,
		LogFormat:  strings.ToLower(f.logFormat),
		LogLevel:   strings.ToLower(f.logLevel),
	}
	if flags.Changed("version") {
		cfg.Version = &f.version
	}
	if flags.Changed("follow-includes") {
		cfg.FollowIncludes = &f.followIncludes
	}
	if flags.Changed("missing-include-fatal") {
		cfg.MissingIncludeFatal = &f.missingIncludeFatal
	}
	if flags.Changed("keep-comments") {
		cfg.KeepComments = &f.keepComments
	}
	if flags.Changed("mask-all-except") {
		cfg.MaskAllExcept = f.maskAllExcept
	}
	return app.NewConfig(cfg)
}

// NewRootCommand builds the ksparse command tree. Program output goes to
// outW, logs and usage errors to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	f := &rootFlags{}
	var a *app.App

	root := &cobra.Command{
		Use:   "ksparse",
		Short: "Parse, validate and normalize kickstart files",
		Long: `ksparse reads kickstart installation files using the syntax of a chosen
kickstart version. It reports syntax errors with their location, writes
documents back in canonical form, and lists how the syntax changes between
versions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(cmd.Flags())
			if err != nil {
				return usageError(err)
			}
			slog.Debug("CLI arguments parsed.", "command", cmd.Name())
			a, err = app.NewApp(outW, errW, cfg, hclconfig.NewLoader())
			return err
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Path to an HCL settings file.")
	pf.StringVar(&f.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	pf.StringVar(&f.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVarP(&f.version, "version", "v", version.DEVEL.String(), "Kickstart syntax version, e.g. F29 or RHEL8.")
	pf.BoolVar(&f.followIncludes, "follow-includes", true, "Expand %include directives.")
	pf.BoolVar(&f.missingIncludeFatal, "missing-include-fatal", true, "Fail when an included file cannot be read.")
	pf.BoolVar(&f.keepComments, "keep-comments", false, "Keep top-level comments in the output.")
	pf.StringSliceVar(&f.maskAllExcept, "mask-all-except", nil, "Ignore every command except the listed ones.")

	root.AddCommand(
		newValidateCommand(&a),
		newFlattenCommand(&a),
		newDumpCommand(&a),
		newVerDiffCommand(&a),
		newVersionsCommand(&a),
	)
	return root
}

// Execute runs the command line given by args.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func positional(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

func newValidateCommand(a **app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate PATH...",
		Short: "Check kickstart files and directories for errors",
		Args:  positional(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed, err := (*a).Validate(cmd.Context(), args...)
			if err != nil {
				return err
			}
			if failed > 0 {
				return &ExitError{Code: 1, Message: fmt.Sprintf("%d file(s) failed validation", failed)}
			}
			return nil
		},
	}
}

func newFlattenCommand(a **app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "flatten FILE",
		Short: "Write a kickstart file in canonical form with includes expanded",
		Args:  positional(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*a).Flatten(cmd.Context(), args[0])
		},
	}
}

func newDumpCommand(a **app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "dump FILE",
		Short: "Write the parsed content of a kickstart file as YAML",
		Args:  positional(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*a).Dump(cmd.Context(), args[0])
		},
	}
}

func newVerDiffCommand(a **app.App) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "verdiff",
		Short: "List syntax changes between two kickstart versions",
		Args:  positional(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" || to == "" {
				return usageError(errors.New("both --from and --to are required"))
			}
			fv, err := version.StringToVersion(from)
			if err != nil {
				return usageError(fmt.Errorf("invalid --from: %w", err))
			}
			tv, err := version.StringToVersion(to)
			if err != nil {
				return usageError(fmt.Errorf("invalid --to: %w", err))
			}
			return (*a).VerDiff(fv, tv)
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "The older version.")
	cmd.Flags().StringVarP(&to, "to", "t", "", "The newer version.")
	return cmd
}

func newVersionsCommand(a **app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the supported kickstart versions",
		Args:  positional(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*a).Versions()
		},
	}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

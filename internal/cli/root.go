// Package cli wires the inputmask command tree.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-inputmask/pkg/prompt"
)

// EnvConfig names the environment variable supplying the default --config.
const EnvConfig = "INPUTMASK_CONFIG"

var (
	versionStr   = "dev"
	commitStr    = "unknown"
	buildTimeStr = "unknown"
)

// SetVersion sets the version information printed by the version command.
func SetVersion(version, commit, buildTime string) {
	versionStr = version
	commitStr = commit
	buildTimeStr = buildTime
}

// Option customises the command tree, mainly for tests.
type Option func(*app)

// WithPromptDriver replaces the survey driver used by the prompt command.
func WithPromptDriver(driver prompt.Driver) Option {
	return func(a *app) {
		a.driver = driver
	}
}

// WithEnvFile overrides the dotenv file read before each command.
func WithEnvFile(path string) Option {
	return func(a *app) {
		a.envFile = path
	}
}

type app struct {
	verbose    bool
	configPath string
	envFile    string
	driver     prompt.Driver
	logger     *slog.Logger
}

// NewRootCommand builds the inputmask command tree.
func NewRootCommand(options ...Option) *cobra.Command {
	a := &app{envFile: ".env"}
	for _, option := range options {
		if option != nil {
			option(a)
		}
	}

	root := &cobra.Command{
		Use:   "inputmask",
		Short: "Mask and unmask form input from the terminal",
		Long: `inputmask formats raw input using literal patterns such as "[1 ](000) 000-0000",
thousands grouping for numbers, or date component reassembly, and strips it
back to the canonical value.

Masks can be given inline with --pattern/--type or loaded by name from a
JSON/YAML definitions file with --config and --name.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "mask definitions file or directory (default $"+EnvConfig+")")

	root.AddCommand(
		a.newMaskCommand(),
		a.newUnmaskCommand(),
		a.newResolveCommand(),
		a.newPlaceholderCommand(),
		a.newListCommand(),
		a.newFieldsCommand(),
		a.newPromptCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if a.configPath == "" {
		a.configPath = os.Getenv(EnvConfig)
	}

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "inputmask %s\n", versionStr)
			fmt.Fprintf(out, "  commit: %s\n", commitStr)
			fmt.Fprintf(out, "  built:  %s\n", buildTimeStr)
		},
	}
}

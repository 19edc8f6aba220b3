package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/maskconfig"
)

type maskFlags struct {
	name        string
	pattern     string
	typeTag     string
	delimiter   string
	decimalChar string
	datePattern string
	maxLength   int
	guide       bool
	strict      bool
}

func (f *maskFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.name, "name", "n", "", "named mask from --config")
	flags.StringVarP(&f.pattern, "pattern", "p", "", `literal pattern, e.g. "[1 ](000) 000-0000"`)
	flags.StringVarP(&f.typeTag, "type", "t", "", "mask type: Number or Date")
	flags.StringVar(&f.delimiter, "delimiter", "", "separator (default , for numbers, / for dates, - otherwise)")
	flags.StringVar(&f.decimalChar, "decimal", "", "decimal character for numbers (default .)")
	flags.StringVar(&f.datePattern, "date-pattern", "", "date component order (default YYYY-mm-dd)")
	flags.IntVar(&f.maxLength, "max-length", 0, "maximum sanitized characters consumed (0 = unbounded)")
	flags.BoolVar(&f.guide, "guide", false, "render unfilled slots as _")
	flags.BoolVar(&f.strict, "strict", false, "reject unbalanced optional groups")
}

func (f *maskFlags) config() (mask.Config, error) {
	pattern := f.pattern
	if f.typeTag != "" {
		mode := mask.ParseMode(f.typeTag)
		if mode == mask.ModeLiteral {
			return mask.Config{}, fmt.Errorf("unknown mask type %q (want Number or Date)", f.typeTag)
		}
		if pattern != "" {
			return mask.Config{}, errors.New("--pattern and --type are mutually exclusive")
		}
		pattern = mode.String()
	}
	return mask.Config{
		Pattern:     pattern,
		Delimiter:   f.delimiter,
		DecimalChar: f.decimalChar,
		DatePattern: f.datePattern,
		MaxLength:   f.maxLength,
		Guide:       f.guide,
		Strict:      f.strict,
	}, nil
}

func (a *app) engine(f *maskFlags) (*mask.Engine, error) {
	if f.name != "" {
		store, err := a.loadStore()
		if err != nil {
			return nil, err
		}
		return store.Engine(f.name)
	}
	cfg, err := f.config()
	if err != nil {
		return nil, err
	}
	return mask.New(cfg)
}

// loadStore reads --config as a single definitions file or a directory tree.
func (a *app) loadStore() (*maskconfig.Store, error) {
	if a.configPath == "" {
		return nil, fmt.Errorf("no mask definitions: pass --config or set %s", EnvConfig)
	}
	info, err := os.Stat(a.configPath)
	if err != nil {
		return nil, err
	}
	var store *maskconfig.Store
	if info.IsDir() {
		store, err = maskconfig.LoadFS(os.DirFS(a.configPath), maskconfig.WithLogger(a.logger))
	} else {
		var data []byte
		data, err = os.ReadFile(a.configPath)
		if err != nil {
			return nil, err
		}
		store, err = maskconfig.Parse(data, filepath.Base(a.configPath))
	}
	if err != nil {
		return nil, err
	}
	a.logger.Debug("mask store ready", "config", a.configPath, "masks", len(store.Names()))
	return store, nil
}

func (a *app) newMaskCommand() *cobra.Command {
	flags := &maskFlags{}
	cmd := &cobra.Command{
		Use:   "mask VALUE...",
		Short: "Print the masked form of each value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine(flags)
			if err != nil {
				return err
			}
			for _, value := range args {
				fmt.Fprintln(cmd.OutOrStdout(), engine.Mask(value))
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) newUnmaskCommand() *cobra.Command {
	flags := &maskFlags{}
	cmd := &cobra.Command{
		Use:   "unmask VALUE...",
		Short: "Print the canonical form of each value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine(flags)
			if err != nil {
				return err
			}
			for _, value := range args {
				fmt.Fprintln(cmd.OutOrStdout(), engine.Unmask(value))
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

type resolvedValue struct {
	Input         string `json:"input"`
	Value         string `json:"value"`
	UnmaskedValue string `json:"unmaskedValue"`
}

func (a *app) newResolveCommand() *cobra.Command {
	flags := &maskFlags{}
	cmd := &cobra.Command{
		Use:   "resolve VALUE...",
		Short: "Print masked and unmasked forms of each value as JSON lines",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine(flags)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, value := range args {
				engine.Resolve(value)
				if err := enc.Encode(resolvedValue{
					Input:         value,
					Value:         engine.Value(),
					UnmaskedValue: engine.UnmaskedValue(),
				}); err != nil {
					return err
				}
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) newPlaceholderCommand() *cobra.Command {
	flags := &maskFlags{}
	cmd := &cobra.Command{
		Use:   "placeholder",
		Short: "Print the input placeholder for a mask",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine(flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), engine.Placeholder())
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the masks defined in --config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range store.Names() {
				cfg, _ := store.Config(name)
				line := fmt.Sprintf("%s\t%s", name, cfg.Pattern)
				if def, ok := store.Definition(name); ok && def.Description != "" {
					line += "\t" + strings.TrimSpace(def.Description)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

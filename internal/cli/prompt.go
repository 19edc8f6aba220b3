package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-inputmask/pkg/prompt"
)

func (a *app) newPromptCommand() *cobra.Command {
	var (
		names    []string
		required bool
	)
	cmd := &cobra.Command{
		Use:   "prompt --name MASK [--name MASK...]",
		Short: "Interactively collect values for named masks and print them as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(names) == 0 {
				return fmt.Errorf("at least one --name is required")
			}
			store, err := a.loadStore()
			if err != nil {
				return err
			}
			questions := make([]prompt.Question, 0, len(names))
			for _, name := range names {
				engine, err := store.Engine(name)
				if err != nil {
					return err
				}
				label := name
				if def, ok := store.Definition(name); ok && def.Description != "" {
					label = def.Description
				}
				questions = append(questions, prompt.Question{
					Name:     name,
					Label:    label,
					Engine:   engine,
					Required: required,
				})
			}

			prompter := prompt.New(prompt.WithDriver(a.driver))
			answers, err := prompter.AskAll(cmd.Context(), questions)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(answers)
		},
	}
	cmd.Flags().StringSliceVarP(&names, "name", "n", nil, "named mask from --config (repeatable)")
	cmd.Flags().BoolVar(&required, "required", false, "reject answers without maskable characters")
	return cmd
}

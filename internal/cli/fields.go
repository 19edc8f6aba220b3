package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-inputmask/pkg/fieldmask"
	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/openapi"
)

func (a *app) newFieldsCommand() *cobra.Command {
	var operation string
	cmd := &cobra.Command{
		Use:   "fields OPENAPI_FILE",
		Short: "Show the masks resolved for the request fields of an OpenAPI document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			byOperation, err := openapi.FieldsFromFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(byOperation))
			for id := range byOperation {
				if operation == "" || id == operation {
					ids = append(ids, id)
				}
			}
			if len(ids) == 0 && operation != "" {
				return fmt.Errorf("operation %q not found", operation)
			}
			sort.Strings(ids)

			registry := fieldmask.NewRegistry()
			out := cmd.OutOrStdout()
			for _, id := range ids {
				fmt.Fprintln(out, id)
				for _, field := range byOperation[id] {
					cfg, ok := registry.Resolve(field)
					if !ok {
						a.logger.Debug("field has no mask", "operation", id, "field", field.Name)
						continue
					}
					fmt.Fprintf(out, "  %s\t%s\n", field.Name, describe(cfg))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&operation, "operation", "o", "", "only show this operationId")
	return cmd
}

func describe(cfg mask.Config) string {
	engine, err := mask.New(cfg)
	if err != nil {
		return "invalid: " + err.Error()
	}
	resolved := engine.Config()
	switch resolved.Mode {
	case mask.ModeNumber:
		return fmt.Sprintf("Number (delimiter %q, decimal %q)", resolved.Delimiter, resolved.DecimalChar)
	case mask.ModeDate:
		return fmt.Sprintf("Date %s", engine.Placeholder())
	default:
		return fmt.Sprintf("%q", resolved.Pattern)
	}
}

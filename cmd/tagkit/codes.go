package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagkit/internal/errors"
)

func codesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codes [code...]",
		Short: "List error codes",
		Long: `List the registered error codes with their category and message.

With arguments, only the named codes are printed, along with their detail.`,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, code := range errors.GetAllCodes() {
					t, _ := errors.GetTemplate(code)
					fmt.Fprintf(out, "%s  %-10s  %s\n", code, t.Category, t.Message)
				}
				return nil
			}
			for _, arg := range args {
				code := strings.ToUpper(arg)
				t, ok := errors.GetTemplate(code)
				if !ok {
					return errors.Newf(errors.CategoryUsage, "unknown error code %q", arg).
						WithSuggestion("Run 'tagkit codes' to list every code")
				}
				fmt.Fprintf(out, "%s  %-10s  %s\n", code, t.Category, t.Message)
				if t.Detail != "" {
					fmt.Fprintf(out, "      %s\n", t.Detail)
				}
			}
			return nil
		},
	}
	return cmd
}

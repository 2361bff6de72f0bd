package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/style"
)

func cssCmd(c *cli) *cobra.Command {
	var (
		parent string
		indent int
		output string
	)

	cmd := &cobra.Command{
		Use:   "css <file.yaml>",
		Short: "Compile a YAML stylesheet to CSS",
		Long: `Compile a YAML stylesheet to CSS.

Top-level keys are selectors. Nested mappings become descendant
selectors and bare numbers get a px suffix. Use "-" to read stdin.

Examples:
  tagkit css theme.yaml
  tagkit css theme.yaml --parent .card --indent 2
  cat theme.yaml | tagkit css - -o theme.css`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("indent") {
				indent = c.cfg.Indent
			}
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			sheet, err := style.FromYAML(data)
			if err != nil {
				return err
			}
			css, err := sheet.RenderWith(parent, indent)
			if err != nil {
				return err
			}
			c.logger.Debug("stylesheet compiled", "input", args[0], "rules", sheet.Len())
			return writeOutput(cmd.OutOrStdout(), output, css)
		},
	}

	cmd.Flags().StringVarP(&parent, "parent", "p", "", "Selector wrapping the whole sheet")
	cmd.Flags().IntVarP(&indent, "indent", "i", style.DefaultIndent, "Spaces before each declaration (default from tagkit.json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

// readInput reads path, or stdin when path is "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.New("C003").WithDetail(path).Wrap(err)
	}
	return data, nil
}

// writeOutput writes s to path, or to w when path is empty.
func writeOutput(w io.Writer, path, s string) error {
	if path == "" {
		_, err := io.WriteString(w, s)
		return err
	}
	if err := os.WriteFile(path, []byte(s), 0644); err != nil {
		return errors.New("E002").WithDetail(path).Wrap(err)
	}
	success(w, "Wrote %s", path)
	return nil
}

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagkit/internal/config"
	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/export"
	"github.com/vango-dev/tagkit/pkg/style"
)

func exportCmd(c *cli) *cobra.Command {
	var (
		opts   pageOptions
		dir    string
		bucket string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Write a rendered page or stylesheet to a directory or S3",
		Long: `Render a page and store it under <name>.

Names ending in .css export the --style sheets merged into one
stylesheet instead. The target is the export section of tagkit.json
unless --dir or --bucket is given. S3 credentials are read from
AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.

Examples:
  tagkit export index.html --table data.csv
  tagkit export site.css --style base.yaml --style theme.yaml
  tagkit export report.html --bucket reports --prefix daily/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyTo(c)
			switch {
			case bucket != "":
				c.cfg.Export.Bucket = bucket
				c.cfg.Export.Dir = ""
			case dir != "":
				c.cfg.Export = config.ExportConfig{Dir: dir}
			}
			if prefix != "" {
				c.cfg.Export.Prefix = prefix
			}
			if err := c.cfg.Validate(); err != nil {
				return err
			}

			sink, err := c.sink()
			if err != nil {
				return err
			}
			exp := export.New(export.Config{
				Sink:     sink,
				Renderer: c.renderer(nil),
				Logger:   c.logger,
			})

			ctx := cmd.Context()
			name := args[0]
			var loc string
			if strings.HasSuffix(name, ".css") {
				sheet, err := mergedStyles(cmd, opts.styles)
				if err != nil {
					return err
				}
				loc, err = exp.StyleSheet(ctx, name, sheet)
				if err != nil {
					return err
				}
			} else {
				page, err := buildPage(cmd.InOrStdin(), opts)
				if err != nil {
					return err
				}
				loc, err = exp.Page(ctx, name, page)
				if err != nil {
					return err
				}
			}
			success(cmd.OutOrStdout(), "Exported %s", loc)
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&dir, "dir", "", "Export directory (default from tagkit.json)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (default from tagkit.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")

	return cmd
}

// sink opens the configured export target.
func (c *cli) sink() (export.Sink, error) {
	e := c.cfg.Export
	if !e.UsesS3() {
		return export.NewDirSink(c.cfg.ExportPath())
	}
	client := export.NewS3Client(export.S3Options{
		Region:    e.Region,
		Endpoint:  e.Endpoint,
		PathStyle: e.PathStyle,
	})
	prefix := e.Prefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return export.NewS3Sink(client, e.Bucket, prefix), nil
}

// mergedStyles loads paths and merges them left to right.
func mergedStyles(cmd *cobra.Command, paths []string) (*style.StyleSheet, error) {
	if len(paths) == 0 {
		return nil, errors.New("E001").
			WithDetail("no stylesheet to export").
			WithSuggestion("Pass at least one --style file")
	}
	sheets, err := loadStyles(cmd.InOrStdin(), paths)
	if err != nil {
		return nil, err
	}
	merged := style.New()
	for _, s := range sheets {
		merged = merged.Merge(s)
	}
	return merged, nil
}

package main

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/components"
	"github.com/vango-dev/tagkit/pkg/render"
	"github.com/vango-dev/tagkit/pkg/style"
	"github.com/vango-dev/tagkit/pkg/tag"
)

// pageOptions are the page-building flags shared by page, serve and export.
type pageOptions struct {
	title   string
	lang    string
	heading string
	body    string
	table   string
	styles  []string
	noHTMX  bool
}

func (o *pageOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.title, "title", "t", "", "Page title (default from tagkit.json)")
	f.StringVar(&o.lang, "lang", "en", "Language of the html element")
	f.StringVar(&o.heading, "heading", "", "Text of an h1 at the top of the body")
	f.StringVarP(&o.body, "body", "b", "", "HTML fragment file placed in <main>")
	f.StringVar(&o.table, "table", "", "CSV file rendered as a table; the first row holds the columns")
	f.StringArrayVarP(&o.styles, "style", "s", nil, "YAML stylesheet inlined in the head (repeatable)")
	f.BoolVar(&o.noHTMX, "no-htmx", false, "Leave out the htmx script")
}

// applyTo copies flag overrides into the configuration.
func (o *pageOptions) applyTo(c *cli) {
	if o.title != "" {
		c.cfg.Head.Title = o.title
	}
	if o.noHTMX {
		c.cfg.Head.OmitHTMX = true
	}
}

// buildPage assembles the document described by o. The default head is
// added later by the renderer.
func buildPage(stdin io.Reader, o pageOptions) (*tag.Node, error) {
	styles, err := loadStyles(stdin, o.styles)
	if err != nil {
		return nil, err
	}
	body, err := buildBody(stdin, o)
	if err != nil {
		return nil, err
	}
	data := render.PageData{Lang: o.lang, Styles: styles, Body: body}
	return data.Document(), nil
}

// loadStyles parses each YAML stylesheet in paths.
func loadStyles(stdin io.Reader, paths []string) ([]*style.StyleSheet, error) {
	var sheets []*style.StyleSheet
	for _, path := range paths {
		raw, err := readInput(stdin, path)
		if err != nil {
			return nil, err
		}
		sheet, err := style.FromYAML(raw)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

// buildBody returns the heading, fragment and table requested by o.
func buildBody(stdin io.Reader, o pageOptions) ([]*tag.Node, error) {
	var body []*tag.Node
	if o.heading != "" {
		body = append(body, tag.H1(o.heading))
	}
	if o.body != "" {
		raw, err := readInput(stdin, o.body)
		if err != nil {
			return nil, err
		}
		body = append(body, tag.Main(tag.Raw(raw)))
	}
	if o.table != "" {
		t, err := loadTable(stdin, o.table)
		if err != nil {
			return nil, err
		}
		body = append(body, t.Node())
	}
	return body, nil
}

// loadTable reads a CSV file into a table.
func loadTable(stdin io.Reader, path string) (*components.Table, error) {
	raw, err := readInput(stdin, path)
	if err != nil {
		return nil, err
	}
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.New("C003").WithDetailf("parsing %s", path).Wrap(err)
	}
	if len(records) == 0 {
		return components.NewTable(), nil
	}
	t := components.NewTable(records[0]...)
	t.AddRows(records[1:]...)
	return t, nil
}

// renderer builds a renderer using the configured default head.
func (c *cli) renderer(metrics *render.Metrics) *render.Renderer {
	return render.NewRenderer(render.RendererConfig{
		Logger:      c.logger,
		Metrics:     metrics,
		DefaultHead: c.cfg.HeadNodes(),
		OmitHTMX:    c.cfg.Head.OmitHTMX,
		Doctype:     true,
	})
}

func pageCmd(c *cli) *cobra.Command {
	var (
		opts   pageOptions
		output string
	)

	cmd := &cobra.Command{
		Use:   "page",
		Short: "Render a full HTML page",
		Long: `Render a full HTML page.

The head contains the htmx script, the configured title and
stylesheets, and any YAML stylesheets given with --style.

Examples:
  tagkit page --title Report --table data.csv
  tagkit page --body fragment.html --style theme.yaml -o index.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyTo(c)
			page, err := buildPage(cmd.InOrStdin(), opts)
			if err != nil {
				return err
			}
			html, err := c.renderer(nil).RenderPageToString(cmd.Context(), page)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, html+"\n")
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

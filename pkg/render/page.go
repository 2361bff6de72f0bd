package render

import (
	"github.com/vango-dev/tagkit/pkg/style"
	"github.com/vango-dev/tagkit/pkg/tag"
)

// PageData describes a complete HTML document.
type PageData struct {
	// Body holds the children of the body element.
	Body []*tag.Node

	// Title is the page title
	Title string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// Links contains link tags (stylesheets, favicon, etc.)
	Links []LinkTag

	// Scripts contains script tags to include
	Scripts []ScriptTag

	// Styles are written as inline <style> elements.
	Styles []*style.StyleSheet

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
	Charset   string // charset attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string // rel attribute
	Href        string // href attribute
	Type        string // type attribute
	Sizes       string // sizes attribute
	CrossOrigin string // crossorigin attribute
	Media       string // media attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Type   string // type attribute
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Module bool   // type="module"
	Inline string // inline script content
}

// Document builds the html element for the page. Head content is ordered
// charset, viewport, title, meta, links, stylesheets, styles, scripts.
func (p PageData) Document() *tag.Node {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	head := []*tag.Node{
		tag.Meta(tag.Charset("utf-8")),
		tag.Meta(tag.Name("viewport"), tag.Content("width=device-width, initial-scale=1")),
	}
	if p.Title != "" {
		head = append(head, tag.Title(p.Title))
	}
	for _, m := range p.Meta {
		head = append(head, m.node())
	}
	for _, l := range p.Links {
		head = append(head, l.node())
	}
	for _, href := range p.StyleSheets {
		head = append(head, tag.Link(tag.Rel("stylesheet"), tag.Href(href)))
	}
	for _, s := range p.Styles {
		if s != nil {
			head = append(head, tag.Style(s))
		}
	}
	for _, s := range p.Scripts {
		head = append(head, s.node())
	}

	return tag.Html(tag.Lang(lang),
		tag.Head(head),
		tag.Body(p.Body),
	)
}

func (m MetaTag) node() *tag.Node {
	return tag.Meta(
		tag.AttrIf(m.Charset != "", tag.Charset(m.Charset)),
		tag.AttrIf(m.Name != "", tag.Name(m.Name)),
		tag.AttrIf(m.Property != "", tag.Attribute("property", m.Property)),
		tag.AttrIf(m.HTTPEquiv != "", tag.HttpEquiv(m.HTTPEquiv)),
		tag.AttrIf(m.Content != "", tag.Content(m.Content)),
	)
}

func (l LinkTag) node() *tag.Node {
	return tag.Link(
		tag.AttrIf(l.Rel != "", tag.Rel(l.Rel)),
		tag.AttrIf(l.Href != "", tag.Href(l.Href)),
		tag.AttrIf(l.Type != "", tag.Type(l.Type)),
		tag.AttrIf(l.Sizes != "", tag.Attribute("sizes", l.Sizes)),
		tag.AttrIf(l.CrossOrigin != "", tag.Crossorigin(l.CrossOrigin)),
		tag.AttrIf(l.Media != "", tag.Attribute("media", l.Media)),
	)
}

func (s ScriptTag) node() *tag.Node {
	typ := s.Type
	if s.Module {
		typ = "module"
	}
	var body any
	if s.Inline != "" {
		body = tag.Raw(s.Inline)
	}
	return tag.Script(
		tag.AttrIf(s.Src != "", tag.Src(s.Src)),
		tag.AttrIf(typ != "", tag.Type(typ)),
		tag.AttrIf(s.Defer, tag.Attribute("defer", "defer")),
		tag.AttrIf(s.Async, tag.Attribute("async", "async")),
		body,
	)
}

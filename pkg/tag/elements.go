package tag

// Element constructors. Each returns a new node of the matching kind and
// panics if a self-closing element is given children; use New to get the
// error instead.

// Document structure

func Html(args ...any) *Node     { return must(New(KindHtml, args...)) }
func Head(args ...any) *Node     { return must(New(KindHead, args...)) }
func Body(args ...any) *Node     { return must(New(KindBody, args...)) }
func Title(args ...any) *Node    { return must(New(KindTitle, args...)) }
func Meta(args ...any) *Node     { return must(New(KindMeta, args...)) }
func Link(args ...any) *Node     { return must(New(KindLink, args...)) }
func Base(args ...any) *Node     { return must(New(KindBase, args...)) }
func Style(args ...any) *Node    { return must(New(KindStyle, args...)) }
func Script(args ...any) *Node   { return must(New(KindScript, args...)) }
func Noscript(args ...any) *Node { return must(New(KindNoscript, args...)) }
func Template(args ...any) *Node { return must(New(KindTemplate, args...)) }
func Slot(args ...any) *Node     { return must(New(KindSlot, args...)) }

// Content sectioning

func Header(args ...any) *Node  { return must(New(KindHeader, args...)) }
func Footer(args ...any) *Node  { return must(New(KindFooter, args...)) }
func Main(args ...any) *Node    { return must(New(KindMain, args...)) }
func Nav(args ...any) *Node     { return must(New(KindNav, args...)) }
func Section(args ...any) *Node { return must(New(KindSection, args...)) }
func Article(args ...any) *Node { return must(New(KindArticle, args...)) }
func Aside(args ...any) *Node   { return must(New(KindAside, args...)) }
func Address(args ...any) *Node { return must(New(KindAddress, args...)) }
func Search(args ...any) *Node  { return must(New(KindSearch, args...)) }
func Hgroup(args ...any) *Node  { return must(New(KindHgroup, args...)) }
func H1(args ...any) *Node      { return must(New(KindH1, args...)) }
func H2(args ...any) *Node      { return must(New(KindH2, args...)) }
func H3(args ...any) *Node      { return must(New(KindH3, args...)) }
func H4(args ...any) *Node      { return must(New(KindH4, args...)) }
func H5(args ...any) *Node      { return must(New(KindH5, args...)) }
func H6(args ...any) *Node      { return must(New(KindH6, args...)) }

// Text content

func Div(args ...any) *Node        { return must(New(KindDiv, args...)) }
func P(args ...any) *Node          { return must(New(KindP, args...)) }
func Span(args ...any) *Node       { return must(New(KindSpan, args...)) }
func Pre(args ...any) *Node        { return must(New(KindPre, args...)) }
func Blockquote(args ...any) *Node { return must(New(KindBlockquote, args...)) }
func Ul(args ...any) *Node         { return must(New(KindUl, args...)) }
func Ol(args ...any) *Node         { return must(New(KindOl, args...)) }
func Li(args ...any) *Node         { return must(New(KindLi, args...)) }
func Dl(args ...any) *Node         { return must(New(KindDl, args...)) }
func Dt(args ...any) *Node         { return must(New(KindDt, args...)) }
func Dd(args ...any) *Node         { return must(New(KindDd, args...)) }
func Hr(args ...any) *Node         { return must(New(KindHr, args...)) }
func Figure(args ...any) *Node     { return must(New(KindFigure, args...)) }
func Figcaption(args ...any) *Node { return must(New(KindFigcaption, args...)) }
func Menu(args ...any) *Node       { return must(New(KindMenu, args...)) }

// Inline text semantics

func A(args ...any) *Node           { return must(New(KindA, args...)) }
func Abbr(args ...any) *Node        { return must(New(KindAbbr, args...)) }
func B(args ...any) *Node           { return must(New(KindB, args...)) }
func Bdi(args ...any) *Node         { return must(New(KindBdi, args...)) }
func Bdo(args ...any) *Node         { return must(New(KindBdo, args...)) }
func Br(args ...any) *Node          { return must(New(KindBr, args...)) }
func Cite(args ...any) *Node        { return must(New(KindCite, args...)) }
func Code(args ...any) *Node        { return must(New(KindCode, args...)) }
func DataElement(args ...any) *Node { return must(New(KindData, args...)) }
func Dfn(args ...any) *Node         { return must(New(KindDfn, args...)) }
func Em(args ...any) *Node          { return must(New(KindEm, args...)) }
func I(args ...any) *Node           { return must(New(KindI, args...)) }
func Kbd(args ...any) *Node         { return must(New(KindKbd, args...)) }
func Mark(args ...any) *Node        { return must(New(KindMark, args...)) }
func Q(args ...any) *Node           { return must(New(KindQ, args...)) }
func Rp(args ...any) *Node          { return must(New(KindRp, args...)) }
func Rt(args ...any) *Node          { return must(New(KindRt, args...)) }
func Ruby(args ...any) *Node        { return must(New(KindRuby, args...)) }
func S(args ...any) *Node           { return must(New(KindS, args...)) }
func Samp(args ...any) *Node        { return must(New(KindSamp, args...)) }
func Small(args ...any) *Node       { return must(New(KindSmall, args...)) }
func Strong(args ...any) *Node      { return must(New(KindStrong, args...)) }
func Sub(args ...any) *Node         { return must(New(KindSub, args...)) }
func Sup(args ...any) *Node         { return must(New(KindSup, args...)) }
func Time(args ...any) *Node        { return must(New(KindTime, args...)) }
func U(args ...any) *Node           { return must(New(KindU, args...)) }
func Var(args ...any) *Node         { return must(New(KindVar, args...)) }
func Wbr(args ...any) *Node         { return must(New(KindWbr, args...)) }
func Del(args ...any) *Node         { return must(New(KindDel, args...)) }
func Ins(args ...any) *Node         { return must(New(KindIns, args...)) }

// Forms

func Form(args ...any) *Node     { return must(New(KindForm, args...)) }
func Input(args ...any) *Node    { return must(New(KindInput, args...)) }
func Textarea(args ...any) *Node { return must(New(KindTextarea, args...)) }
func Select(args ...any) *Node   { return must(New(KindSelect, args...)) }
func Option(args ...any) *Node   { return must(New(KindOption, args...)) }
func Optgroup(args ...any) *Node { return must(New(KindOptgroup, args...)) }
func Button(args ...any) *Node   { return must(New(KindButton, args...)) }
func Label(args ...any) *Node    { return must(New(KindLabel, args...)) }
func Fieldset(args ...any) *Node { return must(New(KindFieldset, args...)) }
func Legend(args ...any) *Node   { return must(New(KindLegend, args...)) }
func Datalist(args ...any) *Node { return must(New(KindDatalist, args...)) }
func Output(args ...any) *Node   { return must(New(KindOutput, args...)) }
func Progress(args ...any) *Node { return must(New(KindProgress, args...)) }
func Meter(args ...any) *Node    { return must(New(KindMeter, args...)) }

// Tables

func Table(args ...any) *Node    { return must(New(KindTable, args...)) }
func Thead(args ...any) *Node    { return must(New(KindThead, args...)) }
func Tbody(args ...any) *Node    { return must(New(KindTbody, args...)) }
func Tfoot(args ...any) *Node    { return must(New(KindTfoot, args...)) }
func Tr(args ...any) *Node       { return must(New(KindTr, args...)) }
func Th(args ...any) *Node       { return must(New(KindTh, args...)) }
func Td(args ...any) *Node       { return must(New(KindTd, args...)) }
func Caption(args ...any) *Node  { return must(New(KindCaption, args...)) }
func Colgroup(args ...any) *Node { return must(New(KindColgroup, args...)) }
func Col(args ...any) *Node      { return must(New(KindCol, args...)) }

// Media and embedded content

func Img(args ...any) *Node         { return must(New(KindImg, args...)) }
func Picture(args ...any) *Node     { return must(New(KindPicture, args...)) }
func Source(args ...any) *Node      { return must(New(KindSource, args...)) }
func Video(args ...any) *Node       { return must(New(KindVideo, args...)) }
func Audio(args ...any) *Node       { return must(New(KindAudio, args...)) }
func Track(args ...any) *Node       { return must(New(KindTrack, args...)) }
func Iframe(args ...any) *Node      { return must(New(KindIframe, args...)) }
func Embed(args ...any) *Node       { return must(New(KindEmbed, args...)) }
func Object(args ...any) *Node      { return must(New(KindObject, args...)) }
func Canvas(args ...any) *Node      { return must(New(KindCanvas, args...)) }
func Svg(args ...any) *Node         { return must(New(KindSvg, args...)) }
func Map(args ...any) *Node         { return must(New(KindMap, args...)) }
func Area(args ...any) *Node        { return must(New(KindArea, args...)) }
func Fencedframe(args ...any) *Node { return must(New(KindFencedframe, args...)) }

// Interactive elements

func Details(args ...any) *Node { return must(New(KindDetails, args...)) }
func Summary(args ...any) *Node { return must(New(KindSummary, args...)) }
func Dialog(args ...any) *Node  { return must(New(KindDialog, args...)) }

// CustomElement creates an element with a custom tag name, e.g. a web
// component. It panics on an empty name.
func CustomElement(name string, args ...any) *Node {
	return must(NewCustom(name, args...))
}

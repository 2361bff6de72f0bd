package tag

import "strings"

// Kind identifies an element type. The zero value is KindCustom, used for
// elements created with NewCustom.
type Kind uint8

const (
	KindCustom Kind = iota
	KindA
	KindAbbr
	KindAddress
	KindArea
	KindArticle
	KindAside
	KindAudio
	KindB
	KindBase
	KindBdi
	KindBdo
	KindBlockquote
	KindBody
	KindBr
	KindButton
	KindCanvas
	KindCaption
	KindCite
	KindCode
	KindCol
	KindColgroup
	KindData
	KindDatalist
	KindDd
	KindDel
	KindDetails
	KindDfn
	KindDialog
	KindDiv
	KindDl
	KindDt
	KindEm
	KindEmbed
	KindFencedframe
	KindFieldset
	KindFigcaption
	KindFigure
	KindFooter
	KindForm
	KindH1
	KindH2
	KindH3
	KindH4
	KindH5
	KindH6
	KindHead
	KindHeader
	KindHgroup
	KindHr
	KindHtml
	KindI
	KindIframe
	KindImg
	KindInput
	KindIns
	KindKbd
	KindLabel
	KindLegend
	KindLi
	KindLink
	KindMain
	KindMap
	KindMark
	KindMenu
	KindMeta
	KindMeter
	KindNav
	KindNoscript
	KindObject
	KindOl
	KindOptgroup
	KindOption
	KindOutput
	KindP
	KindPicture
	KindPre
	KindProgress
	KindQ
	KindRp
	KindRt
	KindRuby
	KindS
	KindSamp
	KindScript
	KindSearch
	KindSection
	KindSelect
	KindSlot
	KindSmall
	KindSource
	KindSpan
	KindStrong
	KindStyle
	KindSub
	KindSummary
	KindSup
	KindSvg
	KindTable
	KindTbody
	KindTd
	KindTemplate
	KindTextarea
	KindTfoot
	KindTh
	KindThead
	KindTime
	KindTitle
	KindTr
	KindTrack
	KindU
	KindUl
	KindVar
	KindVideo
	KindWbr

	kindCount
)

// kindInfo is the static metadata of an element kind.
type kindInfo struct {
	name        string
	selfClosing bool
}

// kinds maps every Kind to its wire name and void flag. Single-letter
// constructors (A, B, I, P, Q, S, U) are plain Go identifiers here, so the
// table is the only place the tag name comes from.
var kinds = [kindCount]kindInfo{
	KindA:           {name: "a"},
	KindAbbr:        {name: "abbr"},
	KindAddress:     {name: "address"},
	KindArea:        {name: "area", selfClosing: true},
	KindArticle:     {name: "article"},
	KindAside:       {name: "aside"},
	KindAudio:       {name: "audio"},
	KindB:           {name: "b"},
	KindBase:        {name: "base", selfClosing: true},
	KindBdi:         {name: "bdi"},
	KindBdo:         {name: "bdo"},
	KindBlockquote:  {name: "blockquote"},
	KindBody:        {name: "body"},
	KindBr:          {name: "br", selfClosing: true},
	KindButton:      {name: "button"},
	KindCanvas:      {name: "canvas"},
	KindCaption:     {name: "caption"},
	KindCite:        {name: "cite"},
	KindCode:        {name: "code"},
	KindCol:         {name: "col", selfClosing: true},
	KindColgroup:    {name: "colgroup"},
	KindData:        {name: "data"},
	KindDatalist:    {name: "datalist"},
	KindDd:          {name: "dd"},
	KindDel:         {name: "del"},
	KindDetails:     {name: "details"},
	KindDfn:         {name: "dfn"},
	KindDialog:      {name: "dialog"},
	KindDiv:         {name: "div"},
	KindDl:          {name: "dl"},
	KindDt:          {name: "dt"},
	KindEm:          {name: "em"},
	KindEmbed:       {name: "embed", selfClosing: true},
	KindFencedframe: {name: "fencedframe"},
	KindFieldset:    {name: "fieldset"},
	KindFigcaption:  {name: "figcaption"},
	KindFigure:      {name: "figure"},
	KindFooter:      {name: "footer"},
	KindForm:        {name: "form"},
	KindH1:          {name: "h1"},
	KindH2:          {name: "h2"},
	KindH3:          {name: "h3"},
	KindH4:          {name: "h4"},
	KindH5:          {name: "h5"},
	KindH6:          {name: "h6"},
	KindHead:        {name: "head"},
	KindHeader:      {name: "header"},
	KindHgroup:      {name: "hgroup"},
	KindHr:          {name: "hr", selfClosing: true},
	KindHtml:        {name: "html"},
	KindI:           {name: "i"},
	KindIframe:      {name: "iframe"},
	KindImg:         {name: "img", selfClosing: true},
	KindInput:       {name: "input", selfClosing: true},
	KindIns:         {name: "ins"},
	KindKbd:         {name: "kbd"},
	KindLabel:       {name: "label"},
	KindLegend:      {name: "legend"},
	KindLi:          {name: "li"},
	KindLink:        {name: "link", selfClosing: true},
	KindMain:        {name: "main"},
	KindMap:         {name: "map"},
	KindMark:        {name: "mark"},
	KindMenu:        {name: "menu"},
	KindMeta:        {name: "meta", selfClosing: true},
	KindMeter:       {name: "meter"},
	KindNav:         {name: "nav"},
	KindNoscript:    {name: "noscript"},
	KindObject:      {name: "object"},
	KindOl:          {name: "ol"},
	KindOptgroup:    {name: "optgroup"},
	KindOption:      {name: "option"},
	KindOutput:      {name: "output"},
	KindP:           {name: "p"},
	KindPicture:     {name: "picture"},
	KindPre:         {name: "pre"},
	KindProgress:    {name: "progress"},
	KindQ:           {name: "q"},
	KindRp:          {name: "rp"},
	KindRt:          {name: "rt"},
	KindRuby:        {name: "ruby"},
	KindS:           {name: "s"},
	KindSamp:        {name: "samp"},
	KindScript:      {name: "script"},
	KindSearch:      {name: "search"},
	KindSection:     {name: "section"},
	KindSelect:      {name: "select"},
	KindSlot:        {name: "slot"},
	KindSmall:       {name: "small"},
	KindSource:      {name: "source", selfClosing: true},
	KindSpan:        {name: "span"},
	KindStrong:      {name: "strong"},
	KindStyle:       {name: "style"},
	KindSub:         {name: "sub"},
	KindSummary:     {name: "summary"},
	KindSup:         {name: "sup"},
	KindSvg:         {name: "svg"},
	KindTable:       {name: "table"},
	KindTbody:       {name: "tbody"},
	KindTd:          {name: "td"},
	KindTemplate:    {name: "template"},
	KindTextarea:    {name: "textarea"},
	KindTfoot:       {name: "tfoot"},
	KindTh:          {name: "th"},
	KindThead:       {name: "thead"},
	KindTime:        {name: "time"},
	KindTitle:       {name: "title"},
	KindTr:          {name: "tr"},
	KindTrack:       {name: "track", selfClosing: true},
	KindU:           {name: "u"},
	KindUl:          {name: "ul"},
	KindVar:         {name: "var"},
	KindVideo:       {name: "video"},
	KindWbr:         {name: "wbr", selfClosing: true},
}

// kindsByName is the reverse lookup of kinds, built once at init.
var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kinds))
	for k := KindCustom + 1; k < kindCount; k++ {
		m[kinds[k].name] = k
	}
	return m
}()

// Name returns the lowercase wire name of the kind ("" for KindCustom).
func (k Kind) Name() string {
	if k >= kindCount {
		return ""
	}
	return kinds[k].name
}

// SelfClosing reports whether elements of this kind are void elements that
// never hold children and render without a closing tag.
func (k Kind) SelfClosing() bool {
	return k < kindCount && kinds[k].selfClosing
}

// String returns the wire name, or "custom" for KindCustom.
func (k Kind) String() string {
	if k == KindCustom {
		return "custom"
	}
	if k >= kindCount {
		return "unknown"
	}
	return kinds[k].name
}

// LookupKind resolves a tag name to its Kind. Names are matched case
// insensitively; unknown names report false.
func LookupKind(name string) (Kind, bool) {
	k, ok := kindsByName[strings.ToLower(name)]
	return k, ok
}

// Kinds returns every known element kind in table order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindCustom + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LineKind tells a front end how to style a line of page text.
type LineKind int

const (
	LineText LineKind = iota
	LineHeading
	LineItem
)

// Line is one block of page text.
type Line struct {
	Kind LineKind
	Text string
}

// blockAtoms end the current line when opened or closed.
var blockAtoms = map[atom.Atom]bool{
	atom.Div: true, atom.P: true, atom.Section: true, atom.Article: true,
	atom.Ul: true, atom.Ol: true, atom.Li: true, atom.Br: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Form: true, atom.Label: true, atom.Tr: true, atom.Table: true,
}

var headingAtoms = map[atom.Atom]bool{
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
}

// PlainText flattens page markup into styled lines. Whitespace is collapsed,
// scripts and styles are dropped, images show their alt text and links keep
// their target.
func PlainText(markup string) []Line {
	z := html.NewTokenizer(strings.NewReader(markup))

	var (
		lines []Line
		cur   strings.Builder
		kind  = LineText
		skip  int
		href  string
	)
	flush := func() {
		text := strings.Join(strings.Fields(cur.String()), " ")
		if text != "" {
			lines = append(lines, Line{Kind: kind, Text: text})
		}
		cur.Reset()
		kind = LineText
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				// Tokenizer errors other than EOF only come from the reader.
				return lines
			}
			flush()
			return lines

		case html.TextToken:
			if skip == 0 {
				cur.Write(z.Text())
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.DataAtom {
			case atom.Script, atom.Style:
				if tt == html.StartTagToken {
					skip++
				}
				continue
			case atom.Img:
				if alt := attr(tok, "alt"); alt != "" {
					fmt.Fprintf(&cur, " [%s] ", alt)
				}
				continue
			case atom.A:
				href = attr(tok, "href")
				continue
			case atom.Input, atom.Textarea:
				if ph := attr(tok, "placeholder"); ph != "" {
					fmt.Fprintf(&cur, " [%s] ", ph)
				}
				continue
			}
			if blockAtoms[tok.DataAtom] {
				flush()
				switch {
				case headingAtoms[tok.DataAtom]:
					kind = LineHeading
				case tok.DataAtom == atom.Li:
					kind = LineItem
				}
			}

		case html.EndTagToken:
			tok := z.Token()
			switch tok.DataAtom {
			case atom.Script, atom.Style:
				if skip > 0 {
					skip--
				}
				continue
			case atom.A:
				if href != "" && !strings.HasPrefix(href, "#") {
					fmt.Fprintf(&cur, " (%s)", href)
				}
				href = ""
				continue
			}
			if blockAtoms[tok.DataAtom] {
				flush()
			}
		}
	}
}

func attr(tok html.Token, name string) string {
	for _, a := range tok.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// Wrap breaks text into lines no wider than width terminal cells.
// Words longer than width are left on their own line.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var (
		out  []string
		line strings.Builder
		used int
	)
	for _, word := range strings.Fields(text) {
		w := uniseg.StringWidth(word)
		if used > 0 && used+1+w > width {
			out = append(out, line.String())
			line.Reset()
			used = 0
		}
		if used > 0 {
			line.WriteByte(' ')
			used++
		}
		line.WriteString(word)
		used += w
	}
	if used > 0 {
		out = append(out, line.String())
	}
	return out
}

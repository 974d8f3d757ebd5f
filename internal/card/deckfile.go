package card

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Deck files are markdown. Card entries are plain-text lines anywhere in the
// document, one per card:
//
//	A01 ★ 7km+ (tier-scaled)
//	W02 ★★★ Host 2x (>=3 ppl each)
//
// Stars encode difficulty. Everything else in the file (headings, prose,
// list bullets) is ignored.
var deckLineRE = regexp.MustCompile(`^([ABCDW]\d{2})\s+(★+)\s+(.+)$`)

// ParseDeck extracts card definitions from a markdown deck file.
func ParseDeck(source []byte) (*Catalog, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var defs []Def
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		t, ok := n.(*ast.Text)
		if !ok {
			return ast.WalkContinue, nil
		}
		// A text segment spans at most one source line, so card lines
		// arrive here whole.
		line := strings.TrimSpace(string(t.Segment.Value(source)))
		m := deckLineRE.FindStringSubmatch(line)
		if m == nil {
			return ast.WalkContinue, nil
		}
		defs = append(defs, Def{
			Code:  m[1],
			Type:  Type(m[1][:1]),
			Stars: len([]rune(m[2])),
			Title: strings.TrimSpace(m[3]),
		})
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("no card entries found in deck file")
	}
	return NewCatalog(defs)
}

// LoadDeck reads and parses a markdown deck file from disk.
func LoadDeck(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	return ParseDeck(data)
}

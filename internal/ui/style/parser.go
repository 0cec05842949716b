package style

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Parse reads a stylesheet. Only rulesets whose selector is a single .class or #id are
// kept; @-rules and other selectors are skipped. A ruleset missing its closing brace is
// dropped. Later rules override earlier ones.
func Parse(content string) *Stylesheet {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)

	var cur *Rule
	atDepth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if p.Err() == io.EOF {
				return sheet
			}
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			if atDepth > 0 {
				atDepth--
			}
		case css.BeginRulesetGrammar:
			cur = nil
			if atDepth > 0 {
				continue
			}
			sel := joinTokens(p.Values())
			if len(sel) >= 2 && (sel[0] == '.' || sel[0] == '#') && !strings.ContainsAny(sel, " ,>+~:[") {
				cur = &Rule{Selector: sel, Props: make(map[string]string)}
			}
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if cur != nil {
				cur.Props[strings.ToLower(string(data))] = joinTokens(p.Values())
			}
		case css.EndRulesetGrammar:
			if cur != nil {
				sheet.Rules = append(sheet.Rules, *cur)
				cur = nil
			}
		}
	}
}

func joinTokens(toks []css.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

package ui

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a small CSS subset: rulesets whose selectors are .class or #id (comma lists
// allowed) and "key: value;" declarations. At-rules and other selectors are skipped.
// Later rules override earlier for the same selector.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{Rules: nil}
	p := css.NewParser(parse.NewInputString(content), false)
	var selectors []string
	var props map[string]string
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != io.EOF {
				return sheet, err
			}
			return sheet, nil
		case css.BeginRulesetGrammar:
			selectors = parseSelectors(p.Values())
			props = make(map[string]string)
		case css.DeclarationGrammar:
			if props != nil {
				props[strings.ToLower(string(data))] = joinTokens(p.Values())
			}
		case css.EndRulesetGrammar:
			for _, sel := range selectors {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
			}
			selectors, props = nil, nil
		}
	}
}

// parseSelectors splits the selector tokens on commas and keeps only .class and #id selectors.
func parseSelectors(tokens []css.Token) []string {
	var out []string
	for _, part := range strings.Split(joinTokens(tokens), ",") {
		sel := strings.TrimSpace(part)
		if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') || strings.ContainsAny(sel, " >+~:[") {
			continue
		}
		out = append(out, sel)
	}
	return out
}

func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

package parser

import (
	"strings"

	"golang.org/x/net/html"
)

// plainText strips markup from an HTML fragment and decodes entities.
func plainText(fragment string) string {
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}

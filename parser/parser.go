package parser

import (
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// ExtractText turns raw page HTML into plain text. Readability does the
// work for most pages; trafilatura and goose cover documents readability
// cannot handle.
func ExtractText(htmlStr string) string {
	if text, err := parseWithReadability(htmlStr); err == nil && strings.TrimSpace(text) != "" {
		return text
	}
	if text, err := parseWithTrafilatura(htmlStr); err == nil && strings.TrimSpace(text) != "" {
		return text
	}
	if text, err := parseWithGoose(htmlStr); err == nil && strings.TrimSpace(text) != "" {
		return text
	}
	return ""
}

func parseWithReadability(htmlStr string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}

func parseWithTrafilatura(htmlStr string) (string, error) {
	article, err := trafilatura.Extract(strings.NewReader(htmlStr), trafilatura.Options{})
	if err != nil {
		return "", err
	}
	return article.ContentText, nil
}

func parseWithGoose(htmlStr string) (string, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return "", err
	}
	return article.CleanedText, nil
}

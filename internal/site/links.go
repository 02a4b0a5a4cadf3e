package site

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ExtractLinks returns the href of every anchor in an HTML document, in document order.
func ExtractLinks(doc []byte) ([]string, error) {
	z := html.NewTokenizer(bytes.NewReader(doc))
	var out []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return out, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "a" || !hasAttr {
				continue
			}
			for {
				key, val, more := z.TagAttr()
				if string(key) == "href" {
					if href := strings.TrimSpace(string(val)); href != "" {
						out = append(out, href)
					}
				}
				if !more {
					break
				}
			}
		}
	}
}

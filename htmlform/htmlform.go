// Package htmlform bridges HTML markup and the dom package using
// golang.org/x/net/html.
package htmlform

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Azhovan/formatvalidate/dom"
)

// ErrNoForm is returned by LoadForm when the selector matches no form.
var ErrNoForm = errors.New("htmlform: form not found")

// Parse reads an HTML document. The returned document is rooted at the
// <html> element; comments and the doctype are dropped.
func Parse(r io.Reader) (*dom.Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return dom.NewDocument(convert(c)), nil
		}
	}
	return dom.NewDocument(nil), nil
}

// LoadForm parses r and selects a form. An empty selector picks the first
// form.
func LoadForm(r io.Reader, selector string) (*dom.Document, *dom.Form, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, nil, err
	}
	form, err := doc.Form(selector)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrNoForm, err)
	}
	return doc, form, nil
}

func convert(n *html.Node) *dom.Node {
	out := dom.New(n.Data)
	for _, a := range n.Attr {
		out.SetAttr(a.Key, a.Val)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			out.Append(convert(c))
		case html.TextNode:
			out.Append(dom.NewText(c.Data))
		}
	}
	return out
}

// Render writes doc as HTML5, including its current values and any
// rendered messages.
func Render(w io.Writer, doc *dom.Document) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return fmt.Errorf("write doctype: %w", err)
	}
	if err := html.Render(w, toHTML(doc.Root())); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func toHTML(n *dom.Node) *html.Node {
	if n.Type == dom.TextNode {
		return &html.Node{Type: html.TextNode, Data: n.Data}
	}

	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, a := range n.Attrs() {
		out.Attr = append(out.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	for _, c := range n.Children() {
		out.AppendChild(toHTML(c))
	}
	return out
}

// Package xload builds xmlmatch element trees from concrete XML. It is
// the mapping layer the matcher itself stays ignorant of: comments,
// processing instructions, and directives are dropped, namespaces are
// not modeled (element and attribute names keep their local part only),
// and inline character data is whitespace-trimmed and concatenated.
package xload

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aqilarik/xmlmatch/xmlmatch"
)

// File parses the XML document at path into a validated tree.
func File(path string) (*xmlmatch.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Reader(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Reader parses an XML document from r into a validated tree.
func Reader(r io.Reader) (*xmlmatch.Document, error) {
	dec := xml.NewDecoder(r)

	var root *xmlmatch.Node
	var stack []*xmlmatch.Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode token: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &xmlmatch.Node{
				Name:       t.Name.Local,
				Attributes: attributes(t),
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			text := strings.TrimSpace(string(t))
			if text != "" {
				stack[len(stack)-1].Text += text
			}

			// xml.Comment, xml.ProcInst, xml.Directive: outside the model.
		}
	}

	if root == nil {
		return nil, fmt.Errorf("no root element")
	}

	doc := &xmlmatch.Document{Root: root}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func attributes(t xml.StartElement) map[string]string {
	if len(t.Attr) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(t.Attr))
	for _, a := range t.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		attrs[a.Name.Local] = a.Value
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

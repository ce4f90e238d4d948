package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// extractDOCX returns the raw text of a .docx body, one paragraph per block, formatting dropped.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	return documentXMLText(doc.Editable().GetContent())
}

// documentXMLText walks word/document.xml and keeps only run content.
// Tab stops in paragraph properties and page breaks are layout, not text.
func documentXMLText(body string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(body))

	var (
		b      strings.Builder
		inText bool
		runs   int
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "r":
				runs++
			case "t":
				inText = runs > 0
			case "tab":
				if runs > 0 {
					b.WriteByte('\t')
				}
			case "br":
				if runs > 0 && breakType(t) != "page" {
					b.WriteByte('\n')
				}
			case "cr":
				if runs > 0 {
					b.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "r":
				if runs > 0 {
					runs--
				}
			case "t":
				inText = false
			case "p":
				b.WriteString("\n\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

func breakType(el xml.StartElement) string {
	for _, a := range el.Attr {
		if a.Name.Local == "type" {
			return a.Value
		}
	}
	return ""
}

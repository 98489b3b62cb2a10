package tag

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ExtractText pulls plain text out of an uploaded syllabus. PDFs are
// validated with pdfcpu and their content streams scraped for text
// operators; anything else is treated as text already (Canvas imports store
// HTML syllabi).
func ExtractText(data []byte) (string, error) {
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return stripMarkup(string(data)), nil
	}

	if _, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration()); err != nil {
		return "", fmt.Errorf("invalid pdf: %w", err)
	}

	text := scrapeContentStreams(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no extractable text in pdf")
	}
	return text, nil
}

var (
	streamRe = regexp.MustCompile(`(?s)stream\r?\n(.*?)endstream`)
	tjRe     = regexp.MustCompile(`\(((?:\\.|[^()\\])*)\)\s*Tj`)
	tjArrRe  = regexp.MustCompile(`\[((?:\((?:\\.|[^()\\])*\)|[^\]])*)\]\s*TJ`)
	strLitRe = regexp.MustCompile(`\(((?:\\.|[^()\\])*)\)`)
	tagRe    = regexp.MustCompile(`<[^>]*>`)
)

// scrapeContentStreams decompresses FlateDecode streams and collects the
// arguments of Tj/TJ text-show operators. Crude next to a layout-aware
// extractor, but keyword scoring only needs the words.
func scrapeContentStreams(data []byte) string {
	var out strings.Builder

	for _, m := range streamRe.FindAllSubmatch(data, -1) {
		content := m[1]
		if r, err := zlib.NewReader(bytes.NewReader(content)); err == nil {
			if decoded, err := io.ReadAll(r); err == nil {
				content = decoded
			}
			r.Close()
		}
		collectTextOps(string(content), &out)
	}
	return out.String()
}

func collectTextOps(content string, out *strings.Builder) {
	for _, m := range tjRe.FindAllStringSubmatch(content, -1) {
		out.WriteString(unescapePDFString(m[1]))
		out.WriteByte(' ')
	}
	for _, m := range tjArrRe.FindAllStringSubmatch(content, -1) {
		for _, lit := range strLitRe.FindAllStringSubmatch(m[1], -1) {
			out.WriteString(unescapePDFString(lit[1]))
		}
		out.WriteByte(' ')
	}
}

func unescapePDFString(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				out.WriteByte('\n')
			case 't':
				out.WriteByte('\t')
			case 'r':
				out.WriteByte('\r')
			default:
				out.WriteByte(s[i])
			}
			continue
		}
		out.WriteByte(s[i])
	}
	return out.String()
}

func stripMarkup(s string) string {
	return tagRe.ReplaceAllString(s, " ")
}

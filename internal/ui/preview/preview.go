// Package preview renders files for display inside a pane.
package preview

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/tidwall/pretty"
)

// maxBytes caps how much of a file is read; panes never show more.
const maxBytes = 64 << 10

// DefaultStyle is used when the requested chroma style does not exist.
const DefaultStyle = "monokai"

// File reads path and returns it syntax highlighted. lang overrides the
// lexer picked from the file name.
func File(path, lang, style string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, maxBytes)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	src := buf[:n]

	name := lang
	if name == "" {
		name = DetectLexer(filepath.Base(path), src)
	}
	if name == "json" {
		src = pretty.Pretty(src)
	}
	return Highlight(string(src), name, style), nil
}

// DetectLexer picks a lexer name from the file name, then the content.
func DetectLexer(filename string, src []byte) string {
	if l := lexers.Match(filename); l != nil {
		return strings.ToLower(l.Config().Name)
	}
	if l := lexers.Analyse(string(src)); l != nil {
		return strings.ToLower(l.Config().Name)
	}
	return "text"
}

// Highlight applies chroma syntax highlighting to source code.
func Highlight(source, lexerName, style string) string {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	s, ok := chromastyles.Registry[style]
	if !ok {
		s = chromastyles.Get(DefaultStyle)
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	// Tabs would break cell accounting in the pane renderer.
	source = strings.ReplaceAll(source, "\t", "    ")

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, s, iterator); err != nil {
		return source
	}
	return buf.String()
}

//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package highlight turns document lines into colored spans using
// language detection and a syntax lexer. Highlighting is best-effort:
// a file with no recognized language simply renders unstyled.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"

	"github.com/mini-editor/mini/types"
	"github.com/mini-editor/mini/viewport"
)

// A Highlighter colors lines for one file.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// New builds a highlighter for a file, sniffing the language from its
// name and contents. Returns nil when no language is recognized.
func New(path string, sample []byte) *Highlighter {
	lang, safe := enry.GetLanguageByExtension(path)
	if !safe {
		lang = enry.GetLanguage(path, sample)
	}
	if lang == "" {
		return nil
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Match(path)
	}
	if lexer == nil {
		return nil
	}
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{lexer: chroma.Coalesce(lexer), style: style}
}

// Spans tokenizes lines [from, to) and returns per-line colored
// spans, keyed by absolute line number. Tokenizing only the visible
// slice keeps large files cheap; multi-line constructs that begin
// above the window may color imperfectly, which is acceptable here.
func (h *Highlighter) Spans(lines []string, from, to int) map[int][]viewport.Span {
	if h == nil {
		return nil
	}
	if from < 0 {
		from = 0
	}
	if to > len(lines) {
		to = len(lines)
	}
	if from >= to {
		return nil
	}

	iter, err := h.lexer.Tokenise(nil, strings.Join(lines[from:to], "\n"))
	if err != nil {
		return nil
	}

	spans := make(map[int][]viewport.Span)
	y, x := from, 0
	for _, token := range iter.Tokens() {
		fg, hasFg := h.tokenColor(token.Type)
		for i, part := range strings.Split(token.Value, "\n") {
			if i > 0 {
				y++
				x = 0
			}
			n := len([]rune(part))
			if n > 0 && hasFg {
				spans[y] = append(spans[y], viewport.Span{Start: x, End: x + n, Fg: fg})
			}
			x += n
		}
	}
	return spans
}

func (h *Highlighter) tokenColor(t chroma.TokenType) (types.Color, bool) {
	entry := h.style.Get(t)
	if !entry.Colour.IsSet() {
		return types.Color{}, false
	}
	c := entry.Colour
	return types.RGB(c.Red(), c.Green(), c.Blue()), true
}

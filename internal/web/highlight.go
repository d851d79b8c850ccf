package web

import (
	"bytes"
	stdhtml "html"
	"html/template"
	"io"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	chromaLightStyle = "github"
	chromaDarkStyle  = "monokai"
)

func renderCodeBlock(writer io.Writer, code string, language string) {
	lexer := pickLexer(language, code)
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		renderPlainCodeBlock(writer, code)
		return
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.Format(writer, styles.Fallback, iterator); err != nil {
		renderPlainCodeBlock(writer, code)
	}
}

func renderPlainCodeBlock(writer io.Writer, code string) {
	_, _ = io.WriteString(writer, `<pre class="chroma"><code>`)
	_, _ = io.WriteString(writer, stdhtml.EscapeString(code))
	_, _ = io.WriteString(writer, `</code></pre>`)
}

func pickLexer(language string, code string) chroma.Lexer {
	if language != "" {
		if lexer := lexers.Get(language); lexer != nil {
			return lexer
		}
	}

	if lexer := lexers.Analyse(code); lexer != nil {
		return lexer
	}

	return lexers.Fallback
}

var (
	chromaCSSOnce sync.Once
	chromaCSS     template.CSS
)

// ChromaCSS builds the highlight stylesheet once, light and dark schemes
// behind prefers-color-scheme queries.
func ChromaCSS() template.CSS {
	chromaCSSOnce.Do(func() {
		chromaCSS = template.CSS(buildChromaCSS())
	})

	return chromaCSS
}

func buildChromaCSS() string {
	lightCSS := buildSingleStyleCSS(chromaLightStyle)
	darkCSS := buildSingleStyleCSS(chromaDarkStyle)

	var out strings.Builder
	if lightCSS != "" {
		out.WriteString("@media (prefers-color-scheme: light) {\n")
		out.WriteString(lightCSS)
		out.WriteString("}\n")
	}
	if darkCSS != "" {
		out.WriteString("@media (prefers-color-scheme: dark) {\n")
		out.WriteString(darkCSS)
		out.WriteString("}\n")
	}

	return out.String()
}

func buildSingleStyleCSS(styleName string) string {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var buffer bytes.Buffer
	if err := formatter.WriteCSS(&buffer, style); err != nil {
		return ""
	}

	return buffer.String()
}

package format

import (
	"regexp"
	"strconv"
	"strings"
)

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	spacedHeaderRe = regexp.MustCompile(`^(#{1,6})\s{2,}(.+)$`)

	bulletLineRe   = regexp.MustCompile(`^[-*+]\s`)
	bulletMarkerRe = regexp.MustCompile(`^[-*+]\s+`)
	numberLineRe   = regexp.MustCompile(`^\d+\.\s`)
	numberMarkerRe = regexp.MustCompile(`^\d+\.\s+`)
	taskItemRe     = regexp.MustCompile(`^[-*+]\s+\[([ x])\]\s+(.*)`)

	quoteMarkerRe = regexp.MustCompile(`^>\s*`)

	openFenceRe  = regexp.MustCompile("^`{3,}")
	closeFenceRe = regexp.MustCompile("`{3,}$")

	pipeRe         = regexp.MustCompile(`\s*\|\s*`)
	leadingPipeRe  = regexp.MustCompile(`^\s*\|`)
	trailingPipeRe = regexp.MustCompile(`\|\s*$`)

	spacedTripleRe  = regexp.MustCompile(`\*\*\* ([^*]*?) \*\*\*`)
	tripleSpanRe    = regexp.MustCompile(`\*\*\*[^*]*?\*\*\*`)
	spacedBoldRe    = regexp.MustCompile(`\*\* ([^*]*?) \*\*`)
	spacedItalicRe  = regexp.MustCompile(`(?m)(^|[^*\w\s])\* ([^*]*?) \*([^*\w]|$)`)
	longCodeRe      = regexp.MustCompile("`{2,}(.*?)`{2,}")
	longTildeRe     = regexp.MustCompile(`~{3,}`)
	longHighlightRe = regexp.MustCompile(`={3,}(.*?)={3,}`)
)

// NormalizeHeader collapses the run of spaces after the hashes to one.
func NormalizeHeader(text string) string {
	return spacedHeaderRe.ReplaceAllString(text, "$1 $2")
}

// NormalizeList rewrites markers to "- ", "- [ ] " or renumbered "N. ",
// following the list type of the first line. Lines that do not carry a
// marker of that type are left alone.
func NormalizeList(text string) string {
	lines := strings.Split(text, "\n")

	switch first := lines[0]; {
	case bulletLineRe.MatchString(first):
		for i, line := range lines {
			if m := taskItemRe.FindStringSubmatch(line); m != nil {
				lines[i] = "- [" + m[1] + "] " + m[2]
				continue
			}
			lines[i] = bulletMarkerRe.ReplaceAllString(line, "- ")
		}
	case numberLineRe.MatchString(first):
		for i, line := range lines {
			lines[i] = numberMarkerRe.ReplaceAllString(line, strconv.Itoa(i+1)+". ")
		}
	}

	return strings.Join(lines, "\n")
}

// NormalizeQuote puts exactly one space after the first ">" of each line.
// A line holding only the marker stays a bare ">".
func NormalizeQuote(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = quoteMarkerRe.ReplaceAllString(line, "> ")
		if strings.TrimSpace(line) == ">" {
			line = ">"
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// NormalizeCode shortens over-long fences to three backticks.
func NormalizeCode(text string) string {
	text = openFenceRe.ReplaceAllString(text, "```")
	return closeFenceRe.ReplaceAllString(text, "```")
}

// NormalizeTable puts one space on each side of inner pipes and none
// outside the outer ones.
func NormalizeTable(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = pipeRe.ReplaceAllString(line, " | ")
		line = leadingPipeRe.ReplaceAllString(line, "|")
		lines[i] = trailingPipeRe.ReplaceAllString(line, "|")
	}
	return strings.Join(lines, "\n")
}

// FixTextFormatting repairs emphasis markers written with inner padding or
// with too many glyphs: "** bold **", "``code``", "~~~strike~~~",
// "===mark===". A single "~" becomes "~~". A padded single "*" pair is
// repaired only at a line start or after punctuation, so "2 * 3 * 4" stays.
func FixTextFormatting(text string) string {
	text = spacedTripleRe.ReplaceAllString(text, "***$1***")
	text = outsideTriples(text, func(s string) string {
		return spacedBoldRe.ReplaceAllString(s, "**$1**")
	})
	text = spacedItalicRe.ReplaceAllString(text, "$1*$2*$3")
	text = longCodeRe.ReplaceAllString(text, "`$1`")
	text = longTildeRe.ReplaceAllString(text, "~~")
	text = doubleSingleTildes(text)
	return longHighlightRe.ReplaceAllString(text, "==$1==")
}

// outsideTriples applies fn to the stretches of text between "***x***"
// spans, leaving the spans themselves untouched.
func outsideTriples(text string, fn func(string) string) string {
	var b strings.Builder
	last := 0
	for _, loc := range tripleSpanRe.FindAllStringIndex(text, -1) {
		b.WriteString(fn(text[last:loc[0]]))
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(fn(text[last:]))
	return b.String()
}

// doubleSingleTildes turns every "~" with no tilde on either side into "~~".
func doubleSingleTildes(text string) string {
	if !strings.Contains(text, "~") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for i := 0; i < len(text); i++ {
		c := text[i]
		b.WriteByte(c)
		if c != '~' {
			continue
		}
		prevTilde := i > 0 && text[i-1] == '~'
		nextTilde := i+1 < len(text) && text[i+1] == '~'
		if !prevTilde && !nextTilde {
			b.WriteByte('~')
		}
	}
	return b.String()
}

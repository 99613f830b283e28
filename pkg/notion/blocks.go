package notion

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jomei/notionapi"
)

// Notion API limits: blocks per append call, chars per rich text element
const (
	maxBlocksPerAppend = 100
	maxRichTextLen     = 2000
)

var (
	numberedRe = regexp.MustCompile(`^\d+\.\s+(.*)`)
	boldRe     = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// markdownToBlocks converts a markdown document into Notion blocks.
// Supported: heading levels 1-3, bulleted and numbered lists, paragraphs
// (consecutive plain lines are merged), bold spans inside list items and
// paragraphs. Anything fancier is passed through as plain text.
func markdownToBlocks(md string) []notionapi.Block {
	var blocks []notionapi.Block
	lines := strings.Split(md, "\n")

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, headingBlock(3, strings.TrimPrefix(line, "### ")))
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, headingBlock(2, strings.TrimPrefix(line, "## ")))
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, headingBlock(1, strings.TrimPrefix(line, "# ")))
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			blocks = append(blocks, bulletBlock(line[2:]))
		case numberedRe.MatchString(line):
			m := numberedRe.FindStringSubmatch(line)
			blocks = append(blocks, numberedBlock(m[1]))
		default:
			// merge consecutive plain lines into one paragraph
			text := line
			for i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if next == "" || strings.HasPrefix(next, "#") || strings.HasPrefix(next, "- ") ||
					strings.HasPrefix(next, "* ") || numberedRe.MatchString(next) {
					break
				}
				text += "\n" + next
				i++
			}
			// merged paragraphs can outgrow the rich text limit
			for _, chunk := range splitChunks(text, maxRichTextLen) {
				blocks = append(blocks, paragraphBlock(chunk))
			}
		}
	}

	if len(blocks) > maxBlocksPerAppend {
		blocks = blocks[:maxBlocksPerAppend]
	}
	return blocks
}

// splitChunks splits s into pieces of at most limit bytes, cutting on rune
// boundaries and preferring the last newline or space in the chunk so words
// stay intact.
func splitChunks(s string, limit int) []string {
	if len(s) <= limit {
		return []string{s}
	}

	var chunks []string
	for len(s) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		if i := strings.LastIndexAny(s[:cut], "\n "); i > limit/2 {
			cut = i
		}
		chunks = append(chunks, strings.TrimSpace(s[:cut]))
		s = strings.TrimSpace(s[cut:])
	}
	if s != "" {
		chunks = append(chunks, s)
	}
	return chunks
}

// parseInline splits a line into rich text spans, honoring **bold** markers.
func parseInline(s string) []notionapi.RichText {
	matches := boldRe.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return []notionapi.RichText{{Text: &notionapi.Text{Content: s}}}
	}

	var spans []notionapi.RichText
	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, notionapi.RichText{Text: &notionapi.Text{Content: s[last:m[0]]}})
		}
		spans = append(spans, notionapi.RichText{
			Text:        &notionapi.Text{Content: s[m[2]:m[3]]},
			Annotations: &notionapi.Annotations{Bold: true},
		})
		last = m[1]
	}
	if last < len(s) {
		spans = append(spans, notionapi.RichText{Text: &notionapi.Text{Content: s[last:]}})
	}
	return spans
}

func headingBlock(level int, text string) notionapi.Block {
	rt := parseInline(strings.TrimSpace(text))
	base := func(t notionapi.BlockType) notionapi.BasicBlock {
		return notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: t}
	}

	switch level {
	case 1:
		return &notionapi.Heading1Block{BasicBlock: base(notionapi.BlockTypeHeading1), Heading1: notionapi.Heading{RichText: rt}}
	case 2:
		return &notionapi.Heading2Block{BasicBlock: base(notionapi.BlockTypeHeading2), Heading2: notionapi.Heading{RichText: rt}}
	default:
		return &notionapi.Heading3Block{BasicBlock: base(notionapi.BlockTypeHeading3), Heading3: notionapi.Heading{RichText: rt}}
	}
}

func bulletBlock(text string) notionapi.Block {
	return &notionapi.BulletedListItemBlock{
		BasicBlock:       notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: notionapi.BlockTypeBulletedListItem},
		BulletedListItem: notionapi.ListItem{RichText: parseInline(strings.TrimSpace(text))},
	}
}

func numberedBlock(text string) notionapi.Block {
	return &notionapi.NumberedListItemBlock{
		BasicBlock:       notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: notionapi.BlockTypeNumberedListItem},
		NumberedListItem: notionapi.ListItem{RichText: parseInline(strings.TrimSpace(text))},
	}
}

func paragraphBlock(text string) notionapi.Block {
	return &notionapi.ParagraphBlock{
		BasicBlock: notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: notionapi.BlockTypeParagraph},
		Paragraph:  notionapi.Paragraph{RichText: parseInline(text)},
	}
}

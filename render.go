package nb2md

import (
	"strings"
)

// codeLanguage tags fenced blocks holding executable source or tracebacks.
const codeLanguage = "python"

// mimePrecedence is the fixed priority list for execute_result and
// display_data payloads. The first key present in the output's data map
// wins; every other representation is ignored even if present. An output
// carrying none of these keys is silently dropped.
var mimePrecedence = []string{
	"image/png",
	"image/jpeg",
	"image/svg+xml",
	"text/html",
	"text/plain",
}

// renderCell converts one cell into zero or more Markdown blocks.
//
// Markdown cells emit their source verbatim as a single block. Code cells
// emit a fenced block for non-blank source, then one block per output in
// declaration order. A whitespace-only code cell emits no code block but
// its outputs are still processed.
func renderCell(cell Cell) []string {
	switch cell.CellType {
	case CellTypeMarkdown:
		return []string{cell.Source.String()}

	case CellTypeCode:
		var blocks []string
		if source := cell.Source.String(); strings.TrimSpace(source) != "" {
			blocks = append(blocks, fencedBlock(codeLanguage, source))
		}
		for _, out := range cell.Outputs {
			blocks = append(blocks, renderOutput(out)...)
		}
		return blocks
	}

	// Unknown cell types contribute nothing.
	return nil
}

// renderOutput converts one output into at most one Markdown block.
func renderOutput(out Output) []string {
	switch out.OutputType {
	case OutputTypeStream:
		if text := out.Text.String(); strings.TrimSpace(text) != "" {
			return []string{fencedBlock("", text)}
		}

	case OutputTypeExecuteResult, OutputTypeDisplayData:
		return renderDisplayData(out.Data)

	case OutputTypeError:
		if len(out.Traceback) > 0 {
			return []string{fencedBlock(codeLanguage, strings.Join(out.Traceback, "\n"))}
		}
	}
	return nil
}

// renderDisplayData picks the single representation to emit for a data
// payload, walking mimePrecedence in order.
func renderDisplayData(data map[string]SourceText) []string {
	for _, mime := range mimePrecedence {
		payload, ok := data[mime]
		if !ok {
			continue
		}

		switch mime {
		case "image/png", "image/jpeg":
			// The payload is emitted exactly as the notebook recorded it,
			// with no inserted line breaks or whitespace.
			return []string{imageBlock(mime, payload.String())}

		case "image/svg+xml", "text/html":
			// Opaque pass-through: no fencing, no escaping.
			return []string{payload.String()}

		case "text/plain":
			if text := payload.String(); strings.TrimSpace(text) != "" {
				return []string{fencedBlock("", text)}
			}
			return nil
		}
	}
	return nil
}

// fencedBlock wraps text in a fenced code block, stripping trailing
// whitespace but preserving leading and internal whitespace.
func fencedBlock(language, text string) string {
	return "```" + language + "\n" + strings.TrimRight(text, " \t\n\r\v\f") + "\n```"
}

// imageBlock renders an embedded base64 image reference.
// mime is "image/png" or "image/jpeg".
func imageBlock(mime, payload string) string {
	return "![output](data:" + mime + ";base64," + payload + ")"
}

// assembleDocument produces the final post text: front matter, a blank
// line, then all blocks separated by exactly one blank line. The document
// always ends with a single trailing newline.
func assembleDocument(front FrontMatter, blocks []string) string {
	var b strings.Builder
	b.WriteString(front.Render())
	if len(blocks) == 0 {
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString("\n\n")
	b.WriteString(strings.Join(blocks, "\n\n"))
	b.WriteString("\n")
	return b.String()
}

package nb2md

import "regexp"

// The two extraction patterns encode different policies. The strict
// pattern admits only base64-alphabet characters in the payload, so a
// token with interior whitespace simply does not match and the image is
// skipped. The lenient pattern additionally accepts interior whitespace;
// diagnostics use it to surface malformed-but-present images that the
// strict pattern would silently discard.
var (
	strictImagePattern  = regexp.MustCompile(`!\[.*?\]\(data:image/(png|jpeg|jpg);base64,([A-Za-z0-9+/=]+)\)`)
	lenientImagePattern = regexp.MustCompile(`!\[.*?\]\(data:image/(png|jpeg|jpg);base64,([A-Za-z0-9+/=\s]+)\)`)
)

// EmbeddedImage is one base64 image reference extracted from Markdown
// text. Records are never mutated after extraction.
type EmbeddedImage struct {
	Ordinal int    // 1-based position in document order
	Format  string // "png", "jpeg", or "jpg" as declared in the data URI
	Data    string // Raw captured base64 text
}

// ExtractImages scans Markdown text for embedded base64 image references
// using the strict pattern and returns them in document order.
func ExtractImages(content string) []EmbeddedImage {
	return extractWith(strictImagePattern, content)
}

// extractImagesLenient is the diagnostics variant: it also matches tokens
// containing interior whitespace or line breaks.
func extractImagesLenient(content string) []EmbeddedImage {
	return extractWith(lenientImagePattern, content)
}

func extractWith(pattern *regexp.Regexp, content string) []EmbeddedImage {
	matches := pattern.FindAllStringSubmatch(content, -1)
	images := make([]EmbeddedImage, 0, len(matches))
	for i, m := range matches {
		images = append(images, EmbeddedImage{
			Ordinal: i + 1,
			Format:  m[1],
			Data:    m[2],
		})
	}
	return images
}

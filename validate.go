package nb2md

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Format signatures checked against decoded image bytes.
var (
	pngSignature  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegSignature = []byte{0xff, 0xd8}
)

// bytesPerKB converts decoded byte counts to the KB sizes reported to users.
const bytesPerKB = 1024.0

// Per-image validation findings. These are recorded in the report, never
// returned to callers, and their wording is part of the user-facing output.
var (
	errNewlineInData     = errors.New("Contains newline characters")
	errInvalidPNGHeader  = errors.New("Invalid PNG header")
	errInvalidJPEGHeader = errors.New("Invalid JPEG header")
)

// ValidationReport aggregates the outcome of validating every embedded
// image in a Markdown document. ValidImages+InvalidImages always equals
// TotalImages: each image contributes to exactly one of the two counts.
type ValidationReport struct {
	TotalImages   int
	ValidImages   int
	InvalidImages int
	Errors        []string  // "Image N: reason", document order
	ImageSizes    []float64 // Decoded sizes in KB, successful decodes only
}

// TotalSizeKB returns the sum of all decoded image sizes in KB.
func (r *ValidationReport) TotalSizeKB() float64 {
	var total float64
	for _, s := range r.ImageSizes {
		total += s
	}
	return total
}

// AverageSizeKB returns the mean decoded image size in KB, or 0 when no
// image decoded successfully.
func (r *ValidationReport) AverageSizeKB() float64 {
	if len(r.ImageSizes) == 0 {
		return 0
	}
	return r.TotalSizeKB() / float64(len(r.ImageSizes))
}

// ValidateMarkdown extracts every embedded base64 image from the Markdown
// text and validates each one. Validation always completes: one bad image
// never stops the rest.
func ValidateMarkdown(content string) *ValidationReport {
	return ValidateImages(ExtractImages(content))
}

// ValidateImages validates pre-extracted image records. Callers who
// extract images themselves may pass data the strict pattern would never
// produce (e.g. tokens with embedded line breaks), so every check runs
// independently of how the record was obtained.
func ValidateImages(images []EmbeddedImage) *ValidationReport {
	report := &ValidationReport{TotalImages: len(images)}

	for _, img := range images {
		sizeKB, err := validateImage(img)
		if err != nil {
			report.InvalidImages++
			report.Errors = append(report.Errors, fmt.Sprintf("Image %d: %v", img.Ordinal, err))
			if sizeKB > 0 {
				report.ImageSizes = append(report.ImageSizes, sizeKB)
			}
			continue
		}
		report.ValidImages++
		report.ImageSizes = append(report.ImageSizes, sizeKB)
	}

	return report
}

// validateImage checks one image and returns its decoded size in KB.
// A non-zero size may accompany an error when the data decoded but the
// format header did not match.
func validateImage(img EmbeddedImage) (float64, error) {
	if strings.ContainsAny(img.Data, "\n\r") {
		return 0, errNewlineInData
	}

	decoded, err := base64.StdEncoding.DecodeString(img.Data)
	if err != nil {
		return 0, fmt.Errorf("Failed to decode base64: %v", err)
	}
	sizeKB := float64(len(decoded)) / bytesPerKB

	switch img.Format {
	case "png":
		if !bytes.HasPrefix(decoded, pngSignature) {
			return sizeKB, errInvalidPNGHeader
		}
	case "jpeg", "jpg":
		if !bytes.HasPrefix(decoded, jpegSignature) {
			return sizeKB, errInvalidJPEGHeader
		}
	}

	return sizeKB, nil
}

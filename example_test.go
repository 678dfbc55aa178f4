package nb2md_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-nb2md"
)

// Example demonstrates converting a notebook to a Jekyll Markdown post.
func Example() {
	notebook := []byte(`{
		"cells": [
			{"cell_type": "markdown", "source": "# Hello"},
			{"cell_type": "code", "source": "print(\"hi\")", "outputs": [
				{"output_type": "stream", "text": "hi\n"}
			]}
		]
	}`)

	front := nb2md.DefaultFrontMatter("My First Post")
	conv := nb2md.NewConverter()

	result, err := conv.Convert(context.Background(), nb2md.Input{
		Notebook: notebook,
		Front:    &front,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cells=%d images=%d\n", result.Cells, result.Images)
	fmt.Println(strings.Split(string(result.Markdown), "\n")[2])
	// Output:
	// cells=2 images=0
	// title: "My First Post"
}

// Example_validate demonstrates checking embedded images in a post.
func Example_validate() {
	post := "![output](data:image/png;base64,iVBORw0KGgo=)\n\n" +
		"![output](data:image/png;base64,AAAA)\n"

	report := nb2md.ValidateMarkdown(post)

	fmt.Printf("total=%d valid=%d invalid=%d\n",
		report.TotalImages, report.ValidImages, report.InvalidImages)
	for _, e := range report.Errors {
		fmt.Println(e)
	}
	// Output:
	// total=2 valid=1 invalid=1
	// Image 2: Invalid PNG header
}

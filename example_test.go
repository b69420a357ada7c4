package md2html_test

import (
	"context"
	"fmt"
	"log"

	md2html "github.com/alnah/go-md2html"
)

func ExampleRenderMarkdown() {
	result, err := md2html.RenderMarkdown(context.Background(), "# Getting Started\n\n## Install\n")
	if err != nil {
		log.Fatal(err)
	}

	for _, item := range result.TOC {
		fmt.Println(item.Level, item.ID)
	}
	// Output:
	// 1 getting-started
	// 2 install
}

func ExampleNewRenderer() {
	r, err := md2html.NewRenderer(
		md2html.WithHighlighter(nil),
		md2html.WithTypesetter(nil),
	)
	if err != nil {
		log.Fatal(err)
	}

	result, err := r.Render(context.Background(), "Inline $x^2$ stays readable.")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(result.HTML)
	// Output:
	// <p>Inline $x^2$ stays readable.</p>
}

func ExampleSlugify() {
	fmt.Println(md2html.Slugify("Hello, World!"))
	// Output: hello-world
}

package mdbuild_test

import (
	"fmt"

	"github.com/yaklabco/gomdbuild/pkg/mdbuild"
)

func ExampleBuilder() {
	details := mdbuild.New().
		CodeBlock("go test ./...", "sh")

	md := mdbuild.New().
		Heading1("gomdbuild").
		Paragraph("Build Markdown with "+mdbuild.Bold("chained calls")+".").
		NumberedList([]string{"Create a builder", "Add blocks\nin order"}).
		Collapsible("Running the tests", details, false).
		Table([]string{"Flag", "Default"}, [][]string{{"--verify", "false"}}, mdbuild.AlignLeft, mdbuild.AlignCenter).
		Markdown()

	fmt.Println(md)
	// Output:
	// gomdbuild
	// =========
	//
	// Build Markdown with **chained calls**.
	//
	// 1. Create a builder
	// 2. Add blocks
	//    in order
	//
	// <details>
	// <summary>Running the tests</summary>
	//
	// ```sh
	// go test ./...
	// ```
	// </details>
	//
	// |Flag|Default|
	// |:-|:-:|
	// |--verify|false|
}

func ExampleImageSized() {
	fmt.Println(mdbuild.ImageSized("logo.png", "Logo", 0, 0))
	fmt.Println(mdbuild.ImageSized("logo.png", "Logo", 64, 32))
	// Output:
	// ![Logo](logo.png)
	// <img src="logo.png" alt="Logo" width="64" height="32">
}

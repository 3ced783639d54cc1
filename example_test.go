package daybook_test

import (
	"fmt"

	daybook "github.com/alnah/go-daybook"
)

func ExampleSplitTitle() {
	title, body := daybook.SplitTitle("Rough commute. The train broke down twice.")
	fmt.Println(title)
	fmt.Println(body)
	// Output:
	// Rough commute.
	// The train broke down twice.
}

func ExampleSlugify() {
	fmt.Println(daybook.Slugify("Héllo, World!"))
	// Output: hello-world
}

func ExampleHighlight() {
	ctx := daybook.DefaultRenderContext()
	ctx.TagSymbols = "@#"
	ctx.TagColor = daybook.ColorNone // keep the example output plain

	fmt.Println(daybook.Highlight("Called my friend @Bob about #project-x.", ctx))
	// Output: Called my friend @Bob about #project-x.
}

func ExampleTags() {
	fmt.Println(daybook.Tags("Lunch with @Alice to plan #q3-review", "@#"))
	// Output: [@alice #q3-review]
}

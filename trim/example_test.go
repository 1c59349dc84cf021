package trim

import "fmt"

// ExampleSplit demonstrates decomposing a string around its whitespace.
func ExampleSplit() {
	leading, core, trailing := Split("   hest  \n\n asdg \t\n")
	fmt.Printf("%q %q %q\n", leading, core, trailing)
	// Output:
	// "   " "hest  \n\n asdg" " \t\n"
}

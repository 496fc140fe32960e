// Command covobj lists the coverage-instrumented object files of a cargo
// workspace build.
package main

import "github.com/mouse-blink/covobj/cmd"

func main() {
	cmd.Execute()
}

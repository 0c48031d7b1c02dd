// Command twvalidate compiles a JSON Schema document and validates
// instance documents against it from the command line.
package main

import (
	"os"

	"github.com/prachigauriar/twvalidation/cli"
)

func main() {
	os.Exit(cli.Main())
}

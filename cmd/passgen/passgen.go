// Binary passgen generates secure random passwords from the command line
// and optionally copies them to the system clipboard.
package main

import "github.com/passgen/tools/internal/passgen"

func main() {
	passgen.Execute()
}

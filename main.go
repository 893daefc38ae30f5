// Encode and decode base64 with configurable alphabets
package main

import (
	"github.com/flexb64/flexb64/cmd"
	_ "github.com/flexb64/flexb64/cmd/all" // import all commands
)

func main() {
	cmd.Main()
}

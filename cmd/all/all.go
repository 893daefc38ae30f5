// Package all imports all the commands
package all

import (
	_ "github.com/flexb64/flexb64/cmd/alphabets"
	_ "github.com/flexb64/flexb64/cmd/decode"
	_ "github.com/flexb64/flexb64/cmd/encode"
	_ "github.com/flexb64/flexb64/cmd/version"
)

package constant

import _ "embed"

// AsciiArtLogo is printed above the root help.
//
//go:embed ascii.txt
var AsciiArtLogo string

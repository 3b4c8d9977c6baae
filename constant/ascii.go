package constant

import _ "embed"

// AsciiArtLogo is the banner shown by the root command's long help.
//
//go:embed ascii.txt
var AsciiArtLogo string

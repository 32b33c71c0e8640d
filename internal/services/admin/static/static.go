package static

import "embed"

// FS exposes the console's router script and stylesheet for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS

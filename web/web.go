// Package web holds the embedded demo page assets served at the gateway root.
package web

import "embed"

//go:embed index.html app.js style.css
var Assets embed.FS

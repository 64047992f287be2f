// Package web embeds the built front end served by the server.
package web

import "embed"

// DistFS holds the contents of the dist directory.
//
//go:embed dist
var DistFS embed.FS

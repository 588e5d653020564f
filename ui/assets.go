package ui

import "embed"

// Assets holds the page templates and static files
//
//go:embed templates static
var Assets embed.FS

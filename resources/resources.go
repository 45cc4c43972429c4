// Package resources embeds the HTML templates served by the demo
// application.
package resources

import (
	"embed"
	"io/fs"
)

//go:embed views/*.html
var embedded embed.FS

// Views returns the template directory rooted at views/.
func Views() fs.FS {
	sub, err := fs.Sub(embedded, "views")
	if err != nil {
		panic(err)
	}
	return sub
}

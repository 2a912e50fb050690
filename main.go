// Package main provides the entry point for the media administration
// service. It initializes and runs a web server using the Fiber framework
// that serves media categories, media items, sliders and site configuration
// through a REST API, backed by either a relational database or a remote
// REST-table backend, and issues signed upload grants for object storage.
package main

import (
	"os"

	"github.com/GoMediaAdmin/GoMediaAdmin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

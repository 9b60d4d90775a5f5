package main

import (
	"github.com/atom/exception-reporting/cmd/app"
)

func main() {
	app.Run()
}

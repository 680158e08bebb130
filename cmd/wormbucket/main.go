// File: cmd/wormbucket/main.go
package main

import (
	"context"
	"os"
)

func main() {
	app := newApp(os.Stdin, os.Stderr, nil)
	os.Exit(execute(context.Background(), app, os.Args[1:], os.Stdout, os.Stderr))
}

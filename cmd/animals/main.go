// Command animals manages dog and cat records stored as JSON files.
package main

import "github.com/lcrownover/cli-playground/internal/cli"

func main() {
	cli.Execute()
}

package main

import (
	"vidportal/internal/cli"
)

func main() {
	cli.Execute()
}

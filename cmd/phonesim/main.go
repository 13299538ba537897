package main

import "github.com/quarterdesk/phonesim-go/internal/adapters/cli"

func main() {
	cli.Execute()
}

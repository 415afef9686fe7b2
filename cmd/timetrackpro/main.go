package main

import "github.com/terraincognita07/timetrackpro/internal/cli"

func main() {
	cli.Execute()
}

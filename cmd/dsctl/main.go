package main

import "github.com/deploysweep-dev/deploysweep/internal/cli"

func main() {
	cli.Execute()
}

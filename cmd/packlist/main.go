package main

import (
	"fmt"
	"os"

	"github.com/idilsaglam/packlist/internal/cli"
)

func main() {
	code := cli.Execute(os.Args[1:])
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

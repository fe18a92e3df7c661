package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	cli "github.com/arthur-debert/fprime-bootstrap/cmd/fprime-bootstrap"
	"github.com/arthur-debert/fprime-bootstrap/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "FPRIME-BOOTSTRAP",
		Section: "1",
		Source:  "fprime-bootstrap " + version.Version,
		Manual:  "fprime-bootstrap manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/adharris/fvswalk/internal/cli"
	"github.com/adharris/fvswalk/pkg/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)

	if err := cli.ExecuteSolve(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

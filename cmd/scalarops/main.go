// Package main provides the scalarops CLI.
package main

import (
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/born-ml/scalarops/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}

package main

import (
	"flag"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/gonuts/commander"
)

func docsCommand() *commander.Command {
	cmd := &commander.Command{
		Run:       runDocs,
		UsageLine: "docs [-print]",
		Short:     "open documentation web site",
	}
	cmd.Flag = *flag.NewFlagSet("docs", flag.ContinueOnError)
	cmd.Flag.Bool("print", false, "print the URL instead of opening it")
	return cmd
}

func runDocs(cmd *commander.Command, args []string) error {
	docsURL := config.DocsURL
	if docsURL == "" {
		docsURL = defaultDocsURL
	}
	if cmd.Lookup("print").(bool) {
		_, err := fmt.Fprintln(stdout, docsURL)
		return err
	}
	c := exec.CommandContext(cmd.Context(), browserCommand(), docsURL)
	return c.Run()
}

func browserCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

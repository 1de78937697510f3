package main

import (
	"flag"
	"fmt"
	"os"
)

const defaultAPIURL = "http://localhost:8080"

type commandParams struct {
	apiURL      string
	webAppURL   string
	waitSeconds int
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.apiURL, "api-url", defaultAPIURL, "base URL of the monitoring API")
	fs.StringVar(&c.webAppURL, "web-url", "", "base URL of the web app (optional)")
	fs.IntVar(&c.waitSeconds, "wait", 0, "seconds to wait before running tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

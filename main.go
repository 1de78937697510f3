package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/frogg-app/monitoring-contract-tests/apitests"
	"github.com/frogg-app/monitoring-contract-tests/framework"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	if params.waitSeconds > 0 {
		fmt.Printf("Waiting %d seconds for services to start...\n", params.waitSeconds)
		time.Sleep(time.Duration(params.waitSeconds) * time.Second)
	}

	printBanner(params)

	results := apitests.RunTestSuite(params.apiURL, params.webAppURL, &ConsoleTestLogger{}, nil)

	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		os.Exit(1)
	}
}

func printBanner(params commandParams) {
	divider := strings.Repeat("=", 60)
	bold := color.New(color.Bold)
	fmt.Println()
	bold.Println(divider)
	bold.Println("Frogg Server Monitoring - Contract Tests")
	bold.Println(divider)
	fmt.Println()
	fmt.Printf("API URL: %s\n", color.BlueString(params.apiURL))
	if params.webAppURL != "" {
		fmt.Printf("Web URL: %s\n", color.BlueString(params.webAppURL))
	}
}

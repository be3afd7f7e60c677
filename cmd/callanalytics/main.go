package main

import (
	"os"

	"call-analytics-go/cmd/callanalytics/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

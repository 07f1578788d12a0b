// showmylog - Daily Time-Log Reporting Tool
//
// showmylog parses personal daily time-log files, aggregates elapsed
// time by activity type and label, and produces a terminal summary plus
// a static HTML timeline report.
package main

import (
	"os"

	"github.com/sharmaeklavya2/showmylog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

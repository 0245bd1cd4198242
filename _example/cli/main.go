// Command cli validates a single value from the command line, printing
// every message and exiting with status 1 on failure.
//
// Run:
//
//	go run ./_example/cli -name correo -pattern email -required a@b.co
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Gobd/fieldcheck"
)

func main() {
	name := flag.String("name", "valor", "field name used in messages")
	pattern := flag.String("pattern", "", "pattern table entry to match")
	required := flag.Bool("required", false, "fail on an empty value")
	minLen := flag.Float64("min", -1, "minimum length or value, -1 to skip")
	maxLen := flag.Float64("max", -1, "maximum length or value, -1 to skip")
	flag.Parse()

	f := fieldcheck.New().Name(*name).Value(flag.Arg(0))
	if *required {
		f.Required()
	}
	if *pattern != "" {
		f.Pattern(*pattern)
	}
	if *minLen >= 0 {
		f.Min(*minLen)
	}
	if *maxLen >= 0 {
		f.Max(*maxLen)
	}

	if err := f.Report(os.Stdout); err != nil {
		os.Exit(1)
	}
	fmt.Println("ok")
}

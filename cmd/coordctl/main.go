package main

import (
	"fmt"
	"os"

	"github.com/danmuck/coordctl/internal/logging"
)

const usageText = `usage: coordctl <command> [flags]

commands:
  accounts   list, add or remove stored account credentials
  decode     run the economy extractors over a captured payload file
  serve      run the local admin/status server
`

func main() {
	logging.ConfigureRuntime()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "accounts":
		err = runAccounts(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usageText)
	default:
		fmt.Fprintf(os.Stderr, "coordctl: unknown command %q\n", os.Args[1])
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "coordctl: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
)

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func fatalUsage(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(2)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
	s25f <command> [arguments]

Commands:
	probe	 identify the attached flash chip
	status	 print status register 1
	reset	 software reset the chip
	reg	 read or write an addressable register
	erase	 erase a block
`)
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
	}

	switch cmd := flag.Arg(0); cmd {
	case "probe":
		probeCommand(flag.Args()[1:])
	case "status":
		statusCommand(flag.Args()[1:])
	case "reset":
		resetCommand(flag.Args()[1:])
	case "reg":
		regCommand(flag.Args()[1:])
	case "erase":
		eraseCommand(flag.Args()[1:])
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %q\n", cmd)
		usage()
	}
}

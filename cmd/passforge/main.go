// Command passforge generates passwords locally from command-line flags.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/passforge/passforge-go/internal/crypto"
)

func main() {
	cfg, count := parseFlags(flag.CommandLine, os.Args[1:])

	if crypto.PoolSize(cfg) == 0 {
		fmt.Fprintln(os.Stderr, "passforge: select at least one character type")
		os.Exit(1)
	}

	passwords, err := crypto.GenerateBatch(cfg, count)
	if err != nil {
		fmt.Fprintln(os.Stderr, "passforge:", err)
		os.Exit(1)
	}

	for _, p := range passwords {
		fmt.Println(p)
	}
}

// parseFlags registers and parses command-line flags. It takes the FlagSet
// as a parameter so tests can call it without touching global flag state.
func parseFlags(fs *flag.FlagSet, args []string) (crypto.Config, int) {
	var cfg crypto.Config
	var count int

	fs.IntVar(&cfg.Length, "length", 16, "Password length (clamped to 10-100)")
	fs.IntVar(&cfg.Length, "l", 16, "Password length (shorthand)")

	fs.BoolVar(&cfg.IncludeNumbers, "numbers", true, "Include digits (0-9)")
	fs.BoolVar(&cfg.IncludeLowercase, "lowercase", true, "Include lowercase letters")
	fs.BoolVar(&cfg.IncludeUppercase, "uppercase", true, "Include uppercase letters")

	fs.BoolVar(&cfg.BeginWithLetter, "begin-letter", false, "Force the first character to be a letter")
	fs.BoolVar(&cfg.ExcludeSimilar, "exclude-similar", false, "Exclude similar-looking characters (0 O 1 l I | `)")
	fs.BoolVar(&cfg.NoDuplicates, "no-duplicates", false, "Never repeat a character")
	fs.BoolVar(&cfg.RemoveSequential, "no-sequential", false, "Reject sequential runs like abc or 321")

	fs.StringVar(&cfg.CustomSymbols, "symbols", "", "Extra symbol characters to add to the pool")

	fs.IntVar(&count, "count", 5, "Number of passwords to generate")
	fs.IntVar(&count, "c", 5, "Number of passwords (shorthand)")

	_ = fs.Parse(args)

	if count < 1 {
		count = 1
	}
	return cfg, count
}

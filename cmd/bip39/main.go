// Command bip39 generates, validates and converts BIP39 mnemonics.
// Mnemonics are read from the command line, standard in or a hidden
// prompt.
//
// Do not use for real funds or important secrets on an online
// machine!
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"mnemonic.dev/internal/log"
)

const usage = `usage: bip39 [-log-level level] [-log-json] command [flags] [args]

commands:
  generate      generate a new mnemonic
  from-entropy  encode hex entropy as a mnemonic
  entropy       print the entropy of a mnemonic
  validate      check a mnemonic and suggest corrections
  seed          derive the 64-byte seed of a mnemonic
  suggest       suggest list words close to misspelled words
  complete      list the words starting with a prefix
  export        encode a mnemonic as SeedQR, CompactSeedQR or UR
  import        decode a SeedQR, CompactSeedQR or UR
  languages     list the supported languages
`

func main() {
	if err := run(os.Stdout, os.Stdin, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "bip39: %v\n", err)
		os.Exit(2)
	}
}

// app carries the streams and configuration of a single invocation.
type app struct {
	stdout io.Writer
	stdin  io.Reader
	stderr io.Writer
	cfg    config
}

type command struct {
	name string
	run  func(a *app, args []string) error
}

var commands = []command{
	{"generate", (*app).generate},
	{"from-entropy", (*app).fromEntropy},
	{"entropy", (*app).entropy},
	{"validate", (*app).validate},
	{"seed", (*app).seed},
	{"suggest", (*app).suggest},
	{"complete", (*app).complete},
	{"export", (*app).export},
	{"import", (*app).importCode},
	{"languages", (*app).languages},
}

func run(stdout io.Writer, stdin io.Reader, args []string) error {
	a := &app{
		stdout: stdout,
		stdin:  stdin,
		stderr: os.Stderr,
		cfg:    loadConfig(os.Getenv),
	}
	return a.main(args)
}

func (a *app) main(args []string) error {
	fs := flag.NewFlagSet("bip39", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error, off)")
	fs.BoolVar(&a.cfg.LogJSON, "log-json", a.cfg.LogJSON, "log in JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := log.Init(a.stderr, a.cfg.LogLevel, a.cfg.LogJSON); err != nil {
		return err
	}
	args = fs.Args()
	if len(args) == 0 {
		fs.Usage()
		return errors.New("missing command")
	}
	name, args := args[0], args[1:]
	for _, c := range commands {
		if c.name == name {
			log.Logger.Debug().Str("command", name).Msg("run")
			return c.run(a, args)
		}
	}
	return fmt.Errorf("unknown command: %q", name)
}

// flags returns a flag set for the named command.
func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

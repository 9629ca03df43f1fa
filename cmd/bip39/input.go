package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"mnemonic.dev/bip39"
)

// readSecret reads a line from the terminal without echo. It is a
// variable for testing.
var readSecret = func(w io.Writer, prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("standard input is not a terminal")
	}
	fmt.Fprint(w, prompt)
	defer fmt.Fprintln(w)
	return term.ReadPassword(fd)
}

// readInput returns args joined by spaces, or all of standard in when
// there are no arguments. With prompt set, a hidden prompt replaces
// standard in.
func (a *app) readInput(args []string, prompt bool, what string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	var b []byte
	var err error
	if prompt {
		b, err = readSecret(a.stderr, what+": ")
	} else {
		b, err = io.ReadAll(a.stdin)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", what, err)
	}
	defer bip39.Wipe(b)
	s := string(bytes.TrimSpace(b))
	if s == "" {
		return "", fmt.Errorf("no %s given", what)
	}
	return s, nil
}

// readPassphrase returns the passphrase flag value, or the answer to a
// hidden prompt.
func (a *app) readPassphrase(flagValue string, prompt bool) (string, error) {
	if !prompt || flagValue != "" {
		return flagValue, nil
	}
	b, err := readSecret(a.stderr, "Passphrase: ")
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	defer bip39.Wipe(b)
	return string(b), nil
}

// parseMnemonic reads and parses a mnemonic in lang.
func (a *app) parseMnemonic(args []string, lang bip39.Language, prompt, abbrev bool) (bip39.Mnemonic, error) {
	phrase, err := a.readInput(args, prompt, "mnemonic")
	if err != nil {
		return nil, err
	}
	if abbrev {
		return bip39.ParseAbbreviated(phrase, lang)
	}
	return bip39.Parse(phrase, lang)
}

// header prints a title underlined, followed by lines, unless quiet.
func header(w io.Writer, quiet bool, title string, lines ...string) {
	if quiet {
		return
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w)
}

package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"mnemonic.dev/bc/ur"
	"mnemonic.dev/bc/urtypes"
	"mnemonic.dev/bip32"
	"mnemonic.dev/bip39"
	"mnemonic.dev/internal/log"
	"mnemonic.dev/nonstandard"
	"mnemonic.dev/seedqr"
)

func (a *app) generate(args []string) error {
	fs := a.flags("generate")
	words := fs.Int("words", 24, "number of seed words (12, 15, 18, 21 or 24)")
	langName := fs.String("lang", a.cfg.Lang.String(), "mnemonic language")
	showEntropy := fs.Bool("show-entropy", false, "print the entropy")
	showSeed := fs.Bool("show-seed", false, "print the seed")
	passphrase := fs.String("passphrase", "", "seed passphrase (with -show-seed)")
	prompt := fs.Bool("prompt", false, "read the passphrase from a hidden prompt")
	quiet := fs.Bool("quiet", false, "print raw data without headers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lang, err := bip39.ParseLanguage(*langName)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("generate: unexpected arguments: %q", fs.Args())
	}
	n := bip39.EntropyLen(*words)
	if n == 0 {
		err := &bip39.WordCountError{Count: *words}
		return fmt.Errorf("generate: %w (nearest is %d)", err, err.Closest())
	}
	l := log.WithComponent("generate")
	ent := make([]byte, n)
	defer bip39.Wipe(ent)
	if _, err := io.ReadFull(rand.Reader, ent); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	m, err := bip39.New(ent)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	defer m.Wipe()
	phrase, err := m.Phrase(lang)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	l.Debug().Int("words", len(m)).Stringer("lang", lang).Msg("generated mnemonic")
	header(a.stdout, *quiet, "Generated Mnemonic",
		fmt.Sprintf("Words: %d", len(m)),
		fmt.Sprintf("Entropy: %d bits", n*8),
		fmt.Sprintf("Language: %s", lang),
	)
	fmt.Fprintln(a.stdout, phrase)
	if *showEntropy {
		if !*quiet {
			fmt.Fprintln(a.stdout)
		}
		header(a.stdout, *quiet, "Raw Entropy",
			fmt.Sprintf("Bits: %d", n*8),
			fmt.Sprintf("Bytes: %d", n),
		)
		fmt.Fprintf(a.stdout, "%x\n", ent)
	}
	if *showSeed {
		pass, err := a.readPassphrase(*passphrase, *prompt)
		if err != nil {
			return err
		}
		if !*quiet {
			fmt.Fprintln(a.stdout)
		}
		return a.printSeed(phrase, pass, *quiet, false)
	}
	return nil
}

// printSeed derives and prints the seed of the canonical phrase.
func (a *app) printSeed(phrase, passphrase string, quiet, fingerprint bool) error {
	done := log.Benchmark(log.WithComponent("seed"), "pbkdf2")
	seed := bip39.Seed(phrase, passphrase)
	done()
	defer bip39.Wipe(seed)
	lines := []string{fmt.Sprintf("Bytes: %d", len(seed))}
	if passphrase != "" {
		lines = append(lines, "Passphrase: yes")
	} else {
		lines = append(lines, "Passphrase: no")
	}
	header(a.stdout, quiet, "BIP39 Seed", lines...)
	fmt.Fprintf(a.stdout, "%x\n", seed)
	if fingerprint {
		mfp, err := bip32.MasterFingerprint(seed)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if quiet {
			fmt.Fprintf(a.stdout, "%08x\n", mfp)
		} else {
			fmt.Fprintf(a.stdout, "\nMaster fingerprint: %08x\n", mfp)
		}
	}
	return nil
}

func (a *app) fromEntropy(args []string) error {
	fs := a.flags("from-entropy")
	langName := fs.String("lang", a.cfg.Lang.String(), "mnemonic language")
	quiet := fs.Bool("quiet", false, "print raw data without headers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lang, err := bip39.ParseLanguage(*langName)
	if err != nil {
		return fmt.Errorf("from-entropy: %w", err)
	}
	in, err := a.readInput(fs.Args(), false, "entropy")
	if err != nil {
		return fmt.Errorf("from-entropy: %w", err)
	}
	ent, err := bip39.ParseEntropyHex(in)
	if err != nil {
		return fmt.Errorf("from-entropy: %w", err)
	}
	defer bip39.Wipe(ent)
	phrase, err := bip39.Encode(ent, lang)
	if err != nil {
		return fmt.Errorf("from-entropy: %w", err)
	}
	header(a.stdout, *quiet, "Mnemonic",
		fmt.Sprintf("Words: %d", bip39.WordCount(len(ent))),
		fmt.Sprintf("Language: %s", lang),
	)
	fmt.Fprintln(a.stdout, phrase)
	return nil
}

func (a *app) entropy(args []string) error {
	fs := a.flags("entropy")
	langName := fs.String("lang", a.cfg.Lang.String(), "mnemonic language")
	prompt := fs.Bool("prompt", false, "read the mnemonic from a hidden prompt")
	quiet := fs.Bool("quiet", false, "print raw data without headers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lang, err := bip39.ParseLanguage(*langName)
	if err != nil {
		return fmt.Errorf("entropy: %w", err)
	}
	m, err := a.parseMnemonic(fs.Args(), lang, *prompt, false)
	if err != nil {
		return fmt.Errorf("entropy: %w", err)
	}
	defer m.Wipe()
	ent, err := m.Entropy()
	if err != nil {
		return fmt.Errorf("entropy: %w", err)
	}
	defer bip39.Wipe(ent)
	header(a.stdout, *quiet, "Entropy",
		fmt.Sprintf("Bits: %d", len(ent)*8),
		fmt.Sprintf("Bytes: %d", len(ent)),
	)
	fmt.Fprintf(a.stdout, "%x\n", ent)
	return nil
}

func (a *app) validate(args []string) error {
	fs := a.flags("validate")
	langName := fs.String("lang", a.cfg.Lang.String(), "mnemonic language")
	abbrev := fs.Bool("abbrev", false, "accept words abbreviated to four letters")
	prompt := fs.Bool("prompt", false, "read the mnemonic from a hidden prompt")
	quiet := fs.Bool("quiet", false, "print raw data without headers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lang, err := bip39.ParseLanguage(*langName)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	phrase, err := a.readInput(fs.Args(), *prompt, "mnemonic")
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	parse := bip39.Parse
	if *abbrev {
		parse = bip39.ParseAbbreviated
	}
	m, err := parse(phrase, lang)
	if err != nil {
		if t := nonstandard.Electrum(phrase); t != nonstandard.ElectrumNone {
			l := log.WithComponent("validate")
			l.Warn().
				Stringer("type", t).
				Msg("phrase is an Electrum seed, not a BIP39 mnemonic")
		}
		return fmt.Errorf("validate: %w", err)
	}
	defer m.Wipe()
	if *quiet {
		fmt.Fprintln(a.stdout, "valid")
		return nil
	}
	fmt.Fprintf(a.stdout, "Mnemonic is valid (%d words, %s)\n", len(m), lang)
	if *abbrev {
		full, err := m.Phrase(lang)
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}
		fmt.Fprintf(a.stdout, "\n%s\n", full)
	}
	return nil
}

func (a *app) seed(args []string) error {
	fs := a.flags("seed")
	langName := fs.String("lang", a.cfg.Lang.String(), "mnemonic language")
	passphrase := fs.String("passphrase", "", "seed passphrase")
	prompt := fs.Bool("prompt", false, "read the mnemonic and passphrase from hidden prompts")
	fingerprint := fs.Bool("fingerprint", false, "print the BIP32 master key fingerprint")
	quiet := fs.Bool("quiet", false, "print raw data without headers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lang, err := bip39.ParseLanguage(*langName)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	m, err := a.parseMnemonic(fs.Args(), lang, *prompt, false)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	defer m.Wipe()
	pass, err := a.readPassphrase(*passphrase, *prompt)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	phrase, err := m.Phrase(lang)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return a.printSeed(phrase, pass, *quiet, *fingerprint)
}

func (a *app) suggest(args []string) error {
	fs := a.flags("suggest")
	langName := fs.String("lang", a.cfg.Lang.String(), "mnemonic language")
	quiet := fs.Bool("quiet", false, "print suggestions only")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lang, err := bip39.ParseLanguage(*langName)
	if err != nil {
		return fmt.Errorf("suggest: %w", err)
	}
	if fs.NArg() == 0 {
		return errors.New("suggest: specify one or more words")
	}
	wl, err := bip39.WordlistFor(lang)
	if err != nil {
		return fmt.Errorf("suggest: %w", err)
	}
	for _, w := range fs.Args() {
		var sugg []string
		if _, ok := wl.Index(w); ok {
			sugg = []string{w}
		} else {
			sugg = wl.Suggest(w)
		}
		switch {
		case *quiet:
			fmt.Fprintln(a.stdout, strings.Join(sugg, " "))
		case len(sugg) == 0:
			fmt.Fprintf(a.stdout, "%s: no suggestions\n", w)
		case len(sugg) == 1 && sugg[0] == w:
			fmt.Fprintf(a.stdout, "%s: valid\n", w)
		default:
			fmt.Fprintf(a.stdout, "%s: did you mean %s?\n", w, strings.Join(sugg, ", "))
		}
	}
	return nil
}

func (a *app) complete(args []string) error {
	fs := a.flags("complete")
	langName := fs.String("lang", a.cfg.Lang.String(), "mnemonic language")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lang, err := bip39.ParseLanguage(*langName)
	if err != nil {
		return fmt.Errorf("complete: %w", err)
	}
	if fs.NArg() != 1 {
		return errors.New("complete: specify a single prefix")
	}
	wl, err := bip39.WordlistFor(lang)
	if err != nil {
		return fmt.Errorf("complete: %w", err)
	}
	prefix := fs.Arg(0)
	words := wl.Complete(prefix)
	if len(words) == 0 {
		return fmt.Errorf("complete: no %s words start with %q", lang, prefix)
	}
	for _, w := range words {
		fmt.Fprintln(a.stdout, w)
	}
	return nil
}

// Export formats.
const (
	formatSeedQR  = "seedqr"
	formatCompact = "compact"
	formatURBIP39 = "ur-bip39"
	formatURSeed  = "ur-seed"
)

func (a *app) export(args []string) error {
	fs := a.flags("export")
	langName := fs.String("lang", a.cfg.Lang.String(), "mnemonic language")
	format := fs.String("format", formatSeedQR, "output format (seedqr, compact, ur-bip39, ur-seed)")
	asQR := fs.Bool("qr", false, "render a QR code to the terminal")
	prompt := fs.Bool("prompt", false, "read the mnemonic from a hidden prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lang, err := bip39.ParseLanguage(*langName)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	m, err := a.parseMnemonic(fs.Args(), lang, *prompt, false)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer m.Wipe()
	// text is the printable form, payload the QR content.
	var text string
	var payload []byte
	switch *format {
	case formatSeedQR:
		payload, err = seedqr.QR(m)
		text = string(payload)
	case formatCompact:
		payload, err = seedqr.CompactQR(m)
		text = hex.EncodeToString(payload)
	case formatURBIP39:
		var b urtypes.BIP39
		b, err = urtypes.NewBIP39(m, lang)
		text = ur.Encode(urtypes.TypeBIP39, b.Encode())
		// Upper case fits the QR alphanumeric mode.
		payload = []byte(strings.ToUpper(text))
	case formatURSeed:
		var s urtypes.Seed
		s, err = urtypes.NewSeed(m)
		text = ur.Encode(urtypes.TypeSeed, s.Encode())
		payload = []byte(strings.ToUpper(text))
	default:
		return fmt.Errorf("export: unknown format %q", *format)
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer bip39.Wipe(payload)
	l := log.WithComponent("export")
	l.Debug().Str("format", *format).Int("words", len(m)).Msg("export")
	if *asQR {
		return writeQR(a.stdout, payload)
	}
	fmt.Fprintln(a.stdout, text)
	return nil
}

func (a *app) importCode(args []string) error {
	fs := a.flags("import")
	langName := fs.String("lang", a.cfg.Lang.String(), "output language for codes without one")
	quiet := fs.Bool("quiet", false, "print raw data without headers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lang, err := bip39.ParseLanguage(*langName)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	in, err := a.readInput(fs.Args(), false, "code")
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	m, codeLang, err := decodeCode(in)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	defer m.Wipe()
	if codeLang != nil {
		lang = *codeLang
	}
	phrase, err := m.Phrase(lang)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	header(a.stdout, *quiet, "Mnemonic",
		fmt.Sprintf("Words: %d", len(m)),
		fmt.Sprintf("Language: %s", lang),
	)
	fmt.Fprintln(a.stdout, phrase)
	return nil
}

// decodeCode decodes a UR, a SeedQR or a hex encoded CompactSeedQR. The
// language is non-nil for codes that name one.
func decodeCode(s string) (bip39.Mnemonic, *bip39.Language, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToLower(s), "ur:") {
		typ, enc, err := ur.Decode(s)
		if err != nil {
			return nil, nil, err
		}
		v, err := urtypes.Parse(typ, enc)
		if err != nil {
			return nil, nil, err
		}
		m, lang, err := urtypes.ToMnemonic(v)
		if err != nil {
			return nil, nil, err
		}
		if _, ok := v.(urtypes.BIP39); ok {
			return m, &lang, nil
		}
		return m, nil, nil
	}
	// Decimal SeedQR text is 48 to 96 digits, hex CompactSeedQR 32 or 64.
	if isDigits(s) && len(s)%4 == 0 && bip39.EntropyLen(len(s)/4) != 0 {
		return seedqrResult(seedqr.ParseStandard(s))
	}
	switch len(s) {
	case 32, 64:
		raw, err := hex.DecodeString(s)
		if err != nil {
			break
		}
		defer bip39.Wipe(raw)
		return seedqrResult(seedqr.ParseCompact(raw))
	}
	return nil, nil, fmt.Errorf("%w: not a SeedQR, CompactSeedQR or UR", seedqr.ErrInvalid)
}

func seedqrResult(m bip39.Mnemonic, err error) (bip39.Mnemonic, *bip39.Language, error) {
	return m, nil, err
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func (a *app) languages(args []string) error {
	fs := a.flags("languages")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCODE\tWORD LIST")
	for _, l := range bip39.Languages {
		status := "built in"
		if !bip39.Available(l) {
			status = "not installed"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", l, l.Code(), status)
	}
	return tw.Flush()
}

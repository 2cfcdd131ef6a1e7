// Command demicode measures how many terminal cells Unicode text occupies.
//
// The default command prints the display width of each argument. The inspect
// command additionally breaks the text into grapheme clusters and prints one
// row per cluster with code points, character names, and the cell width.
// Arguments are literal strings or U+XXXX code point designators; without
// arguments, lines are read from stdin.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"github.com/apparebit/demicode"
	"github.com/apparebit/demicode/property"
)

const (
	configFlag    = "config"
	ucdFlag       = "ucd"
	versionFlag   = "unicode-version"
	eastAsianFlag = "east-asian"
	verboseFlag   = "verbose"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "demicode"
	app.Usage = "measure the terminal width of Unicode text"
	app.Description = "A tool for inspecting grapheme clusters and their " +
		"fixed-width rendering in terminals."
	app.HideHelpCommand = true

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:      configFlag,
			Usage:     "load defaults from TOML `FILE`",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:  ucdFlag,
			Usage: "load property data from the UCD mirror in `DIR`",
		},
		&cli.StringFlag{
			Name:  versionFlag,
			Usage: "Unicode `VERSION` to load from the mirror",
		},
		&cli.BoolFlag{
			Name:  eastAsianFlag,
			Usage: "render ambiguous-width characters two cells wide",
		},
		&cli.BoolFlag{
			Name:    verboseFlag,
			Aliases: []string{"v"},
			Usage:   "enable debug logging",
		},
	}

	app.Before = func(c *cli.Context) error {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if c.Bool(verboseFlag) {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
		return nil
	}

	app.Action = widthAction
	app.Commands = []*cli.Command{
		{
			Name:      "width",
			Usage:     "print the display width of each input",
			ArgsUsage: "[TEXT|U+XXXX]...",
			Action:    widthAction,
		},
		{
			Name:      "inspect",
			Usage:     "print one row per grapheme cluster",
			ArgsUsage: "[TEXT|U+XXXX]...",
			Action:    inspectAction,
		},
	}
	return app
}

// environment is the fully configured measurement machinery, assembled from
// flags, an optional config file, and built-in defaults, in that order.
type environment struct {
	db   *property.Database
	calc *demicode.Calculator
}

func setup(c *cli.Context) (*environment, error) {
	var cfg config
	if c.IsSet(configFlag) {
		var err error
		if cfg, err = loadConfig(afero.NewOsFs(), c.String(configFlag)); err != nil {
			return nil, err
		}
	}
	dir := cfg.UCDDir
	if c.IsSet(ucdFlag) {
		dir = c.String(ucdFlag)
	}
	version := cfg.UnicodeVersion
	if c.IsSet(versionFlag) {
		version = c.String(versionFlag)
	}

	builtin := property.Builtin()
	var db *property.Database
	switch {
	case dir != "":
		if version == "" {
			version = builtin.Version().String()
		}
		var err error
		if db, err = property.Load(afero.NewOsFs(), dir, version); err != nil {
			return nil, err
		}
		logrus.Debugf("loaded Unicode %s properties from %s", version, dir)
	case version != "" && version != builtin.Version().String():
		return nil, fmt.Errorf("Unicode %s needs a --%s mirror; built-in data covers %s only",
			version, ucdFlag, builtin.Version())
	default:
		db = builtin
		logrus.Debugf("using built-in Unicode %s properties", db.Version())
	}

	var opts []demicode.Option
	if c.Bool(eastAsianFlag) || (!c.IsSet(eastAsianFlag) && cfg.EastAsian) {
		opts = append(opts, demicode.WithAmbiguousWidth(demicode.AmbiguousWide))
	}
	return &environment{db: db, calc: demicode.NewCalculator(db, opts...)}, nil
}

// arguments resolves the positional arguments into the strings to measure.
// U+XXXX designators become the designated character; everything else is
// taken literally. Without arguments, one input per line of stdin.
func arguments(c *cli.Context) ([]string, error) {
	if c.Args().Present() {
		inputs := make([]string, 0, c.Args().Len())
		for _, arg := range c.Args().Slice() {
			if strings.HasPrefix(arg, "U+") || strings.HasPrefix(arg, "u+") {
				cp, err := demicode.ParseCodePoint(arg)
				if err != nil {
					return nil, err
				}
				inputs = append(inputs, string(cp))
				continue
			}
			inputs = append(inputs, arg)
		}
		return inputs, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		inputs = append(inputs, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return inputs, nil
}

func widthAction(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	inputs, err := arguments(c)
	if err != nil {
		return err
	}
	for _, input := range inputs {
		w, err := env.calc.StringWidth(input)
		if err != nil {
			return err
		}
		fmt.Printf("%d\t%s\n", w, input)
	}
	return nil
}

func inspectAction(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	inputs, err := arguments(c)
	if err != nil {
		return err
	}

	// Rows are clipped to the terminal width so long name lists don't wrap.
	cols := 0
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			cols = w
		}
	}

	for _, input := range inputs {
		seg, err := demicode.SegmentString(env.db, input)
		if err != nil {
			return err
		}
		for seg.Next() {
			span := seg.Span()
			w, err := env.calc.ClusterWidth(span.Runes)
			if err != nil {
				return err
			}
			points := make([]string, len(span.Runes))
			names := make([]string, len(span.Runes))
			for i, r := range span.Runes {
				points[i] = fmt.Sprintf("U+%04X", r)
				names[i] = runenames.Name(r)
			}
			line := fmt.Sprintf("%3d..%-3d %d  %-24s %s",
				span.Start, span.End, w,
				strings.Join(points, " "), strings.Join(names, ", "))
			if runes := []rune(line); cols > 0 && len(runes) > cols {
				line = string(runes[:cols])
			}
			fmt.Println(line)
		}
	}
	return nil
}

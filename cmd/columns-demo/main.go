// Command columns-demo shows a paged deck of columns in the terminal, hosted
// either by tcell or by Bubble Tea.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/xqrs/columnlayout"
	"github.com/xqrs/columnlayout/anim"
	"github.com/xqrs/columnlayout/config"
	"github.com/xqrs/columnlayout/gesture"
	"github.com/xqrs/columnlayout/help"
	"github.com/xqrs/columnlayout/internal/logging"
	"github.com/xqrs/columnlayout/teahost"
)

type flags struct {
	ConfigPath  string
	LogLevel    string
	LogFile     string
	Host        string
	Orientation string
	Columns     int
	Cards       int
}

func main() {
	var logCloser func()
	f := &flags{}

	app := &cli.Command{
		Name:  "columns-demo",
		Usage: "Page through a deck of columns",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("COLUMNS_CONFIG"),
				Destination: &f.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error)",
				Sources:     cli.EnvVars("COLUMNS_LOG_LEVEL"),
				Value:       "info",
				Destination: &f.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file; logs are discarded when empty",
				Sources:     cli.EnvVars("COLUMNS_LOG_FILE"),
				Destination: &f.LogFile,
			},
			&cli.StringFlag{
				Name:        "host",
				Usage:       "terminal host (tcell or tea)",
				Value:       "tcell",
				Destination: &f.Host,
			},
			&cli.StringFlag{
				Name:        "orientation",
				Usage:       "override the configured orientation (horizontal or vertical)",
				Destination: &f.Orientation,
			},
			&cli.IntFlag{
				Name:        "columns",
				Usage:       "override the number of visible columns",
				Destination: &f.Columns,
			},
			&cli.IntFlag{
				Name:        "cards",
				Usage:       "number of sample cards",
				Value:       8,
				Destination: &f.Cards,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logging.New(f.LogLevel, f.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			log.Info().
				Str("host", f.Host).
				Str("orientation", cfg.Layout.Orientation).
				Int("cards", f.Cards).
				Msg("starting deck")

			switch f.Host {
			case "tcell":
				return runTcell(cfg, f.Cards)
			case "tea":
				return runTea(cfg, f.Cards)
			}
			return fmt.Errorf("unknown host %q", f.Host)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if f.Orientation == "" && f.Columns == 0 {
		return cfg, nil
	}
	if f.Orientation != "" {
		cfg.Layout.Orientation = f.Orientation
	}
	if f.Columns != 0 {
		cfg.Layout.VisibleColumns = f.Columns
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// sampleCard returns the title and body of card i.
func sampleCard(i int) (title, body string) {
	var lines []string
	for n := 1; n <= 4+i%5*6; n++ {
		lines = append(lines, fmt.Sprintf("Line %d of card %d.", n, i+1))
	}
	return fmt.Sprintf("Card %d", i+1), strings.Join(lines, "\n")
}

func runTcell(cfg *config.Config, count int) error {
	app := columnlayout.NewApplication().SetFrameInterval(cfg.Animation.FrameInterval)
	handler := anim.NewFrameHandler(app)

	manager, err := cfg.Manager(handler)
	if err != nil {
		return fmt.Errorf("build layout: %w", err)
	}
	policy, err := gesture.NewPolicy(cfg.PolicyConfig(), manager, handler)
	if err != nil {
		return fmt.Errorf("build scroll policy: %w", err)
	}

	items := make([]columnlayout.Primitive, count)
	for i := range items {
		title, body := sampleCard(i)
		items[i] = columnlayout.NewColumnView(title).SetText(body)
	}

	keyMap := deckKeyMap(cfg.Bindings())
	deck := columnlayout.NewColumnLayout(manager, policy, cfg.DetectorConfig(gesture.AxisHorizontal)).
		SetScheduler(app).
		SetKeyMap(keyMap).
		SetAdapter(columnlayout.NewSliceAdapter(items...))
	footer := help.New()
	bindHelp(deck.Box, footer, keyMap)

	return app.SetRoot(columnlayout.NewFrame(deck, footer, 1)).Run()
}

// bindHelp shows the bindings of keyMap in footer while target has focus.
func bindHelp(target *columnlayout.Box, footer *help.Help, keyMap help.KeyMap) {
	target.SetFocusFunc(func() { footer.SetKeyMap(keyMap) })
	target.SetBlurFunc(func() { footer.SetKeyMap(nil) })
}

// deckKeyMap replaces the keys of the default deck bindings with the
// configured ones.
func deckKeyMap(bindings map[string][]string) columnlayout.DeckKeyMap {
	keyMap := columnlayout.DefaultDeckKeyMap()
	for action, keys := range bindings {
		switch action {
		case config.ActionNext:
			keyMap.Next.SetKeys(keys...)
		case config.ActionPrevious:
			keyMap.Previous.SetKeys(keys...)
		case config.ActionFirst:
			keyMap.First.SetKeys(keys...)
		case config.ActionLast:
			keyMap.Last.SetKeys(keys...)
		case config.ActionQuit:
			keyMap.Quit.SetKeys(keys...)
		}
	}
	return keyMap
}

func runTea(cfg *config.Config, count int) error {
	cards := make([]teahost.Card, count)
	for i := range cards {
		cards[i].Title, cards[i].Body = sampleCard(i)
	}
	model, err := teahost.New(*cfg, cards)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

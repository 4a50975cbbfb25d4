package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"agyal-site/team"
	"agyal-site/yields"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cli struct {
	cfg        Config
	log        *zap.SugaredLogger
	syncLogger func()
}

func main() {
	root, c := newRootCmd()
	if err := c.execute(root); err != nil {
		os.Exit(1)
	}
}

// execute runs root and flushes the logger whether or not the command failed.
func (c *cli) execute(root *cobra.Command) error {
	defer c.flush()
	return root.Execute()
}

func (c *cli) flush() {
	if c.syncLogger != nil {
		c.syncLogger()
		c.syncLogger = nil
	}
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	root := &cobra.Command{
		Use:          "agyal",
		Short:        "AGYAL fixed income comparison site",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envErr := godotenv.Load()

			c.cfg = ConfigFromEnv()
			if cmd.Flags().Changed("addr") {
				c.cfg.Addr, _ = cmd.Flags().GetString("addr")
			}
			if cmd.Flags().Changed("db") {
				c.cfg.DBPath, _ = cmd.Flags().GetString("db")
			}
			if err := c.cfg.Setup(); err != nil {
				return err
			}

			log, syncFunc, err := newLogger(c.cfg.LogLevel)
			if err != nil {
				return err
			}
			c.log, c.syncLogger = log, syncFunc
			if envErr != nil {
				c.log.Debugw("no .env file loaded", "error", envErr)
			}
			return nil
		},
	}

	root.AddCommand(c.serveCmd(), c.yieldsCmd(), c.teamCmd(), c.statsCmd())
	return root, c
}

func (c *cli) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return serve(ctx, c.cfg, c.log)
		},
	}
	cmd.Flags().String("addr", _addrDefault, "listen address")
	cmd.Flags().String("db", "", "sqlite file for the selection log (disabled when empty)")
	return cmd
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).PaddingRight(2)
	cellStyle    = lipgloss.NewStyle().PaddingRight(2)
	agyalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("35")).Bold(true).PaddingRight(2)
	sectionStyle = lipgloss.NewStyle().Bold(true)
)

func (c *cli) yieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "yields [country]",
		Short: "Print the yield comparison table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := yields.Default()
			entries := tbl.Entries()
			if len(args) == 1 {
				e, err := tbl.Comparison(args[0])
				if err != nil {
					return err
				}
				entries = []yields.Entry{e}
			}
			return printYields(cmd.OutOrStdout(), entries)
		},
	}
}

func printYields(w io.Writer, entries []yields.Entry) error {
	width := len("Country")
	for _, e := range entries {
		width = max(width, len(e.Country))
	}
	country := cellStyle.Width(width + 2)
	figure := cellStyle.Width(10)

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Width(width+2).Render("Country"),
		headerStyle.Width(10).Render("Bank high"),
		headerStyle.Width(10).Render("Bank avg"),
		headerStyle.Width(10).Render("AGYAL high"),
		headerStyle.Width(10).Render("AGYAL avg"),
	)}
	for _, e := range entries {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			country.Render(e.Country),
			figure.Render(yields.FormatPercent(e.Traditional.High)),
			figure.Render(yields.FormatPercent(e.Traditional.Average)),
			agyalStyle.Width(10).Render(yields.FormatPercent(e.Agyal.High)),
			agyalStyle.Width(10).Render(yields.FormatPercent(e.Agyal.Average)),
		))
	}
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))
	return err
}

func (c *cli) teamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team",
		Short: "Print the management team",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, m := range team.Roster() {
				if _, err := fmt.Fprintf(out, "%s\n%s\n%s\n\n", sectionStyle.Render(m.Name), m.Role,
					lipgloss.NewStyle().Width(80).Render(m.Bio)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (c *cli) statsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the most selected countries from the selection log",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit must be at least 1, got %d", limit)
			}
			if c.cfg.DBPath == "" {
				return fmt.Errorf("selection log is disabled: set AGYAL_DB_PATH or --db")
			}
			store, err := openSelectionStore(c.cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			counts, err := store.TopCountries(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printStats(cmd.OutOrStdout(), counts)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of countries to show")
	cmd.Flags().String("db", "", "sqlite file for the selection log")
	return cmd
}

func printStats(w io.Writer, counts []countryCount) error {
	if len(counts) == 0 {
		_, err := fmt.Fprintln(w, "no selections recorded")
		return err
	}
	for i, c := range counts {
		if _, err := fmt.Fprintf(w, "%2d. %-14s %s selections from %s visitors\n",
			i+1, c.Country, humanize.Comma(c.Selections), humanize.Comma(c.Visitors)); err != nil {
			return err
		}
	}
	return nil
}

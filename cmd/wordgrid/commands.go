package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordgrid/internal/cli"
	"github.com/bastiangx/wordgrid/internal/tui"
	"github.com/bastiangx/wordgrid/internal/utils"
	"github.com/bastiangx/wordgrid/pkg/api"
	"github.com/bastiangx/wordgrid/pkg/dictionary"
	"github.com/bastiangx/wordgrid/pkg/grid"
	"github.com/bastiangx/wordgrid/pkg/letters"
	"github.com/bastiangx/wordgrid/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show current version",
		Run: func(cmd *cobra.Command, args []string) {
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportCaller:    false,
				ReportTimestamp: false,
				Prefix:          "",
			})

			styles := log.DefaultStyles()
			styles.Values["version"] = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
			styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
			logger.SetStyles(styles)

			logger.Print("")
			logger.Print("[ WordGrid ] Pick a letter, get a few words!")
			logger.Print("", "version", Version)
			logger.Print("")
			logger.Print("use -h or --help to see available options")
			logger.Print("Github Repo", "gh", gh)
		},
	}
}

func newLettersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "letters",
		Short: "Print the letter grid",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, row := range utils.Rows(grid.Texts(a.grid.Letters()), a.config.CLI.Columns) {
				fmt.Fprintln(out, strings.Join(row, " "))
			}
		},
	}
}

func newWordsCmd(a *app) *cobra.Command {
	var showURLs bool
	cmd := &cobra.Command{
		Use:   "words <letter>",
		Short: "Sample the words for a letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			letter, err := letters.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, row := range a.grid.Words(letter) {
				if showURLs {
					fmt.Fprintf(out, "%s\t%s\n", row.Text, a.grid.URL(row.Text))
					continue
				}
				fmt.Fprintln(out, row.Text)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showURLs, "urls", false, "Print the search URL next to each word")
	return cmd
}

func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open <word>",
		Short: "Look a word up in the browser",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.grid.Open(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}
}

func newCLICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cli",
		Short: "Browse the grid line by line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := cli.NewInputHandler(a.grid, a.config.CLI.Columns, cmd.InOrStdin(), cmd.OutOrStdout())
			return h.Start(cmd.Context())
		},
	}
}

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the grid in a terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := tui.Run(cmd.Context(), a.grid, a.config.CLI.Columns)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve msgpack IPC on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			showStartupInfo("ipc", a)
			srv := server.NewServer(a.grid, a.config, a.configPath)
			return srv.Start(cmd.Context())
		},
	}
}

func newHTTPCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the grid over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.config.Server.HTTPAddr
			}
			if log.GetLevel() != log.DebugLevel {
				gin.SetMode(gin.ReleaseMode)
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           api.NewRouter(a.grid, a.config.Server.MaxLimit),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()
			showStartupInfo("http "+addr, a)

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
			}

			log.Info("Shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the active corpus as msgpack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, _ := dictionary.GetFormatInfo(dictionary.FormatMsgpack)
			if format, err := dictionary.DetectFormat(args[0]); err != nil || format != info.Format {
				return fmt.Errorf("export path must end in one of %v", info.Extensions)
			}

			file, err := os.Create(args[0])
			if err != nil {
				return err
			}
			if err := dictionary.WriteMsgpack(file, a.corpus.Words()); err != nil {
				file.Close()
				return fmt.Errorf("export corpus: %w", err)
			}
			if err := file.Close(); err != nil {
				return err
			}
			log.Infof("Wrote %s words to %s (%s)", utils.FormatWithCommas(a.corpus.Len()), args[0], info.Description)
			return nil
		},
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(mode string, a *app) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	defer log.SetLevel(currentLevel)

	log.Infof("WordGrid %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("mode: %s", mode)
	log.Infof("words: %s", utils.FormatWithCommas(a.corpus.Len()))
	log.Info("status: ready")
}

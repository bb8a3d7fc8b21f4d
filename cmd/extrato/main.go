package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"github.com/yurifrl/extrato/pkg/config"
	"github.com/yurifrl/extrato/pkg/insights"
	"github.com/yurifrl/extrato/pkg/logger"
	"github.com/yurifrl/extrato/pkg/plan"
	"github.com/yurifrl/extrato/pkg/server"
	"github.com/yurifrl/extrato/pkg/service"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "extrato",
	Short: "Bank operations analytics: home page, cashback and category reports",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run [datetime]",
	Short: "Print the home page, the cashback analysis and the category report",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		raw := env.settings.FormatInstant(time.Now())
		if len(args) == 1 && args[0] != "" {
			raw = args[0]
		}
		at, err := env.settings.ParseInstant(raw)
		if err != nil {
			env.logger.Error("application error", "err", err)
			return nil
		}

		p := env.processor()
		if err := p.Run(cmd.Context(), cmd.OutOrStdout(), at); err != nil {
			env.logger.Error("application error", "err", err)
		}
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <plan_file>",
	Short: "Save every category report listed in a YAML plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}

		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Plan preview for %s\n", args[0])
		p.Print(out)
		if dryRun {
			return nil
		}
		return env.processor().RunPlan(out, p, insights.WallClock(time.Now()))
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the views over HTTP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		port, _ := cmd.Flags().GetString("port")
		addr := fmt.Sprintf("0.0.0.0:%s", port)
		srv := server.New(env.settings, env.logger, env.processor())
		env.logger.Info("starting server", "addr", addr)
		return srv.Start(addr)
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the effective settings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		printer := pp.New()
		printer.SetOutput(cmd.OutOrStdout())
		printer.SetColoringEnabled(false)
		_, err = printer.Println(s)
		return err
	},
}

// environment is what every command needs once settings are known.
type environment struct {
	settings *config.Settings
	logger   *log.Logger
	closer   io.Closer
}

func setup(cmd *cobra.Command) (*environment, error) {
	s, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	lg, closer, err := logger.New(s)
	if err != nil {
		return nil, err
	}
	return &environment{settings: s, logger: lg, closer: closer}, nil
}

func (e *environment) processor() *service.Processor {
	rates, stocks := service.NewProviders(e.settings)
	return service.NewProcessor(e.settings, e.logger, rates, stocks)
}

func (e *environment) Close() {
	if err := e.closer.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to close log file:", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Settings file (default is user_settings.json)")
	rootCmd.PersistentFlags().String("operations", "", "Operations spreadsheet (.xlsx, .xls or .csv)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().String("reports", "", "Directory for saved reports")
	rootCmd.PersistentFlags().String("category", "", "Category of the spending report")

	planCmd.Flags().Bool("dry-run", false, "Only print the plan")
	serveCmd.Flags().String("port", "3000", "Server port")

	rootCmd.AddCommand(runCmd, planCmd, serveCmd, settingsCmd)
}

func main() {
	if err := gotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "failed to load .env:", err)
	}
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

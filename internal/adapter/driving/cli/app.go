package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diillson/aws-billing-notifier/internal/adapter/driven/config"
	"github.com/diillson/aws-billing-notifier/internal/application/usecase"
	"github.com/diillson/aws-billing-notifier/internal/bootstrap"
	"github.com/diillson/aws-billing-notifier/internal/shared/types"
	"github.com/diillson/aws-billing-notifier/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd *cobra.Command
	loader  *config.Loader
	build   bootstrap.Builder
	console types.ConsoleInterface
	version string
	banner  bool
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, loader *config.Loader, build bootstrap.Builder, console types.ConsoleInterface) *CLIApp {
	app := &CLIApp{
		loader:  loader,
		build:   build,
		console: console,
		version: versionStr,
		banner:  true,
	}

	rootCmd := &cobra.Command{
		Use:   "billing-notifier",
		Short: "Send the month-to-date AWS bill to a chat webhook and/or an SNS topic",
		Long: `Queries AWS Cost Explorer for the current month's amortized cost, total and per service,
and sends a summary to WEBHOOK_URL and/or SNS_TOPIC_ARN. ACCOUNT_NUMBER names the account
in the notification title.`,
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Billing Notifier version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("env-file", ".env", "Path to a .env file (ignored when missing)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Print the notification instead of sending it")
	rootCmd.PersistentFlags().String("as-of", "", "Report as if today were this date (YYYY-MM-DD, UTC)")
	rootCmd.PersistentFlags().Bool("resolve-account", false, "Look up the account id with STS when ACCOUNT_NUMBER is not set")
	rootCmd.PersistentFlags().Bool("budgets", false, "Append AWS Budgets status to the notification")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// ExecuteContext runs the CLI application with the given context.
func (app *CLIApp) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, mainly for tests.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// DisableBanner turns off the welcome banner.
func (app *CLIApp) DisableBanner() {
	app.banner = false
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	envFile, _ := app.rootCmd.Flags().GetString("env-file")
	dryRun, _ := app.rootCmd.Flags().GetBool("dry-run")
	asOf, _ := app.rootCmd.Flags().GetString("as-of")
	resolveAccount, _ := app.rootCmd.Flags().GetBool("resolve-account")
	budgets, _ := app.rootCmd.Flags().GetBool("budgets")

	args := &types.CLIArgs{
		ConfigFile:     configFile,
		EnvFile:        envFile,
		DryRun:         dryRun,
		ResolveAccount: resolveAccount,
		Budgets:        budgets,
	}

	if asOf != "" {
		date, err := time.Parse("2006-01-02", asOf)
		if err != nil {
			return nil, fmt.Errorf("invalid --as-of %q: expected YYYY-MM-DD", asOf)
		}
		args.AsOf = &date
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	if app.banner {
		displayWelcomeBanner()
	}

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	cfg, err := app.loader.
		WithOverride(func(c *types.Config) {
			if cliArgs.ResolveAccount {
				c.ResolveAccountID = true
			}
			if cliArgs.Budgets {
				c.IncludeBudgets = true
			}
		}).
		Load(cliArgs.ConfigFile, cliArgs.EnvFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	uc, err := app.build(ctx, cfg, app.console)
	if err != nil {
		return err
	}
	if cliArgs.AsOf != nil {
		asOf := *cliArgs.AsOf
		uc.WithClock(func() time.Time { return asOf })
	}

	report, err := uc.Run(ctx, usecase.RunOptions{DryRun: cliArgs.DryRun})
	if report != nil && len(report.Results) > 0 {
		app.printResults(report)
	}
	return err
}

func (app *CLIApp) printResults(report *usecase.RunReport) {
	table := app.console.CreateTable()
	table.AddColumn("Destination")
	table.AddColumn("Status")
	for _, r := range report.Results {
		status := "sent"
		if !r.OK() {
			status = "failed: " + r.Err.Error()
		}
		table.AddRow(r.Sink, status)
	}
	app.console.Print(table.Render())
}

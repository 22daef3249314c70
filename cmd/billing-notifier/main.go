package main

import (
	"context"
	"fmt"
	"os"

	"github.com/diillson/aws-billing-notifier/internal/adapter/driven/config"
	"github.com/diillson/aws-billing-notifier/internal/adapter/driving/cli"
	"github.com/diillson/aws-billing-notifier/internal/adapter/driving/lambda"
	"github.com/diillson/aws-billing-notifier/internal/bootstrap"
	"github.com/diillson/aws-billing-notifier/pkg/console"
	"github.com/diillson/aws-billing-notifier/pkg/version"
)

func main() {
	loader := config.NewLoader(config.NewConfigRepository())

	if lambda.InLambda() {
		runLambda(loader)
		return
	}

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, loader, bootstrap.NewUseCase, console.NewConsole())
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runLambda reads the configuration once per cold start and serves every
// scheduled invocation with the same use case.
func runLambda(loader *config.Loader) {
	out := console.NewPlainConsole(os.Stdout)

	cfg, err := loader.Load("", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	uc, err := bootstrap.NewUseCase(context.Background(), cfg, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lambda.NewHandler(uc, out).Start()
}

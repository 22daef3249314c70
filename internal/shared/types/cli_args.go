package types

import "time"

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	EnvFile        string
	DryRun         bool
	AsOf           *time.Time
	ResolveAccount bool
	Budgets        bool
}

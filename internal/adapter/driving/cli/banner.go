package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/aws-billing-notifier/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
     ___ _ _ _ _                _  _     _   _  __ _
    | _ |_) | (_)_ _  __ _     | \| |___| |_(_)/ _(_)___ _ _
    | _ \ | | | | ' \/ _' |    | .' / _ \  _| |  _| / -_) '_|
    |___/_|_|_|_|_||_\__, |    |_|\_\___/\__|_|_| |_\___|_|
                     |___/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))
	fmt.Println(blue(fmt.Sprintf("AWS Billing Notifier (v%s)", version.FormatVersion())))
}

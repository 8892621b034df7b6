package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
)

const cliVersion = "1.0.0"

func main() {
	arg1, arg2, arg3, err := validateInput()
	if err != nil {
		exitGracefully(err)
	}

	setup(arg1)

	switch arg1 {
	case "migrate":
		if arg2 == "" {
			arg2 = "up"
		}
		if err := doMigrate(arg2, arg3); err != nil {
			exitGracefully(err)
		}
		exitGracefully(nil, "Migrations completed")

	case "createsuperuser":
		if err := doCreateSuperuser(arg2 == "--noinput"); err != nil {
			exitGracefully(err)
		}

	case "seed":
		if err := doSeed(); err != nil {
			exitGracefully(err)
		}

	case "import":
		if arg2 == "" {
			exitGracefully(errors.New("import requires a YAML file path"))
		}
		if err := doImport(arg2); err != nil {
			exitGracefully(err)
		}

	case "backfill-oz":
		if err := doBackfillOz(); err != nil {
			exitGracefully(err)
		}

	case "version":
		color.Green("TechCockBar CLI version: %s", cliVersion)

	case "help":
		showHelp()

	default:
		showHelp()
	}
}

func validateInput() (string, string, string, error) {
	var arg1, arg2, arg3 string

	if len(os.Args) > 1 {
		arg1 = os.Args[1]

		if len(os.Args) > 2 {
			arg2 = os.Args[2]
		}

		if len(os.Args) > 3 {
			arg3 = os.Args[3]
		}
	} else {
		color.Red("Please provide a command")
		showHelp()
		return "", "", "", errors.New("no command provided")
	}

	return arg1, arg2, arg3, nil
}

func exitGracefully(err error, msg ...string) {
	message := ""
	if len(msg) > 0 {
		message = msg[0]
	}

	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}

	if message != "" {
		color.Yellow(message)
	}
}

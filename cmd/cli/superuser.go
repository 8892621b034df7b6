package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"
)

func doCreateSuperuser(noinput bool) error {
	var username, password string
	var email *string

	if noinput {
		username = os.Getenv("SUPERUSER_USERNAME")
		password = os.Getenv("SUPERUSER_PASSWORD")
		if username == "" || password == "" {
			return errors.New("--noinput requires SUPERUSER_USERNAME and SUPERUSER_PASSWORD")
		}
		if e := os.Getenv("SUPERUSER_EMAIL"); e != "" {
			email = &e
		}
	} else {
		reader := bufio.NewReader(os.Stdin)

		fmt.Print("Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		username = strings.TrimSpace(line)
		if username == "" {
			return errors.New("username cannot be empty")
		}

		fmt.Print("Email (optional): ")
		line, err = reader.ReadString('\n')
		if err != nil {
			return err
		}
		if e := strings.TrimSpace(line); e != "" {
			email = &e
		}

		password, err = readPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Password (again): ")
		if err != nil {
			return err
		}
		if password != confirm {
			return errors.New("passwords do not match")
		}
	}

	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	svc := newServices()
	user, err := svc.User.CreateSuperuser(username, password, email)
	if err != nil {
		return err
	}

	color.Green("Superuser %q created (id=%d)", user.Username, user.ID)
	return nil
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

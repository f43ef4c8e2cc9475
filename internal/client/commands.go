// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/spf13/cobra"
)

// credentialsFlags holds the flags shared by signup and signin.
type credentialsFlags struct {
	email    string
	password string
}

func (f *credentialsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.email, "email", "", "account email")
	cmd.Flags().StringVar(&f.password, "password", "", "account password (prompted when omitted)")
}

func (a *App) credentials(cmd *cobra.Command, f *credentialsFlags) (models.Credentials, error) {
	email := strings.TrimSpace(f.email)
	if email == "" {
		return models.Credentials{}, ErrEmptyEmail
	}

	password := f.password
	if password == "" {
		var err error
		if password, err = a.readPassword(cmd); err != nil {
			return models.Credentials{}, err
		}
	}
	if password == "" {
		return models.Credentials{}, ErrEmptyPassword
	}

	return models.Credentials{Email: email, Password: password}, nil
}

func (a *App) newSignUpCmd() *cobra.Command {
	flags := &credentialsFlags{}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			credentials, err := a.credentials(cmd, flags)
			if err != nil {
				return err
			}

			user, err := a.adapter.SignUp(cmd.Context(), credentials)
			if err != nil {
				return err
			}

			cmd.Printf("Registered %s (id %s)\n", user.Email, user.UserID)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func (a *App) newSignInCmd() *cobra.Command {
	flags := &credentialsFlags{}

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and print an access token",
		Long: `Sign in with email and password and print the access token on
standard output, e.g. export TODO_TOKEN=$(todo signin --email me@example.com).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			credentials, err := a.credentials(cmd, flags)
			if err != nil {
				return err
			}

			token, err := a.adapter.SignIn(cmd.Context(), credentials)
			if err != nil {
				return err
			}

			cmd.Println(token.AccessToken)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func (a *App) newMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.adapter.Me(cmd.Context())
			if err != nil {
				return err
			}

			printUser(cmd, user)
			return nil
		},
	}
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("Client version: %s\n", a.version)

			serverVersion, err := a.adapter.ServerVersion(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Printf("Server version: %s\n", serverVersion)
			return nil
		},
	}
}

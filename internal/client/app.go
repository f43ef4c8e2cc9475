// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// TokenEnv is the environment variable read when --token is not given.
const TokenEnv = "TODO_TOKEN"

// AdapterFactory builds the server adapter once flags are applied to the
// client configuration.
type AdapterFactory func(cfg config.ClientConfig, log *logger.Logger) (adapter.ServerAdapter, error)

// App is the command-line client. A single App may run several command
// lines; every run builds a fresh adapter.
type App struct {
	cfg        config.ClientConfig
	version    string
	newAdapter AdapterFactory

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// adapter is set by the root pre-run hook.
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

// Option customises an [App] built by [NewApp].
type Option func(*App)

// WithIO replaces the standard streams used by the commands.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
		a.errOut = errOut
	}
}

// WithAdapterFactory replaces [adapter.NewHTTPServerAdapter].
func WithAdapterFactory(factory AdapterFactory) Option {
	return func(a *App) {
		a.newAdapter = factory
	}
}

// WithVersion sets the client version printed by --version and "version".
func WithVersion(version string) Option {
	return func(a *App) {
		a.version = version
	}
}

// NewApp returns a client App using cfg as the defaults of the global
// flags.
func NewApp(cfg config.ClientConfig, log *logger.Logger, opts ...Option) *App {
	a := &App{
		cfg:        cfg,
		version:    "dev",
		newAdapter: adapter.NewHTTPServerAdapter,
		in:         os.Stdin,
		out:        os.Stdout,
		errOut:     os.Stderr,
		logger:     log,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	cmd := a.NewRootCmd()
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}

// NewRootCmd creates the root command with all subcommands attached.
func (a *App) NewRootCmd() *cobra.Command {
	cfg := a.cfg
	var token string

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "Command-line client of the todo API",
		Version:       a.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			serverAdapter, err := a.newAdapter(cfg, a.logger)
			if err != nil {
				return fmt.Errorf("create server adapter: %w", err)
			}

			if token == "" {
				token = os.Getenv(TokenEnv)
			}
			serverAdapter.SetToken(token)

			a.adapter = serverAdapter
			return nil
		},
	}

	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	cmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "base URL of the todo API")
	cmd.PersistentFlags().DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "request timeout")
	cmd.PersistentFlags().StringVar(&token, "token", "", "access token (defaults to $"+TokenEnv+")")

	cmd.AddCommand(a.newSignUpCmd())
	cmd.AddCommand(a.newSignInCmd())
	cmd.AddCommand(a.newMeCmd())
	cmd.AddCommand(a.newTasksCmd())
	cmd.AddCommand(a.newVersionCmd())

	return cmd
}

// readPassword prompts on the error stream and reads a password. A terminal
// is read without echo; any other input is read up to the end of line.
func (a *App) readPassword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

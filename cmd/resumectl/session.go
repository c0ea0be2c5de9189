package main

import (
	"errors"

	"github.com/spf13/cobra"

	"resumebuilder/internal/app"
)

var errNotLoggedIn = errors.New("not logged in, run resumectl login first")

var (
	email    string
	password string
)

func requireUser(ws *app.Workspace) error {
	if !ws.Session.Snapshot().Authenticated() {
		return errNotLoggedIn
	}
	return nil
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the credential in the local store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ws, err := openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer ws.Close()

			user, err := ws.Session.Login(ctx, email, password)
			if err != nil {
				return err
			}
			return printUser(cmd, output, *user)
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored credential and clear the editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer ws.Close()
			return ws.Logout(cmd.Context())
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer ws.Close()

			if err := requireUser(ws); err != nil {
				return err
			}
			return printUser(cmd, output, *ws.Session.User())
		},
	}
}

func init() {
	cmd := newLoginCmd()
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	rootCmd.AddCommand(cmd)
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
}

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

// NewLoginCommand creates the login command
func NewLoginCommand(opts *RootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and merge this device's cart into your account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.Controller.Login(cmd.Context(), email, password); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			return printSession(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewRegisterCommand creates the register command
func NewRegisterCommand(opts *RootOptions) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.Controller.Register(cmd.Context(), name, email, password); err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
			return printSession(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out; the cart shown afterwards is this device's guest cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.Controller.Logout(); err != nil {
				return err
			}
			return printSession(opts, cmd)
		},
	}
}

// NewWhoamiCommand creates the whoami command
func NewWhoamiCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who is signed in on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSession(opts, cmd)
		},
	}
}

type sessionView struct {
	State     string     `json:"state"`
	UserID    string     `json:"userId,omitempty"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func printSession(opts *RootOptions, cmd *cobra.Command) error {
	c := opts.app.Controller
	view := sessionView{State: c.State().String()}
	if session, ok := c.Session(); ok {
		view.UserID = session.UserID
		view.Name = session.User.Name
		view.Email = session.User.Email
		if !session.Expiry.IsZero() {
			expiry := session.Expiry
			view.ExpiresAt = &expiry
		}
	}

	return newPrinter(opts, cmd).emit(view, func(w io.Writer) {
		if view.UserID == "" {
			fmt.Fprintln(w, "Signed out (guest cart on this device).")
			return
		}
		fmt.Fprintf(w, "Signed in as %s <%s>\n", view.Name, view.Email)
		if view.ExpiresAt != nil {
			fmt.Fprintf(w, "Session expires %s; sign in again after that.\n", view.ExpiresAt.Format(time.RFC1123))
		}
	})
}

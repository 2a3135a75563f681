package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	auth "ColumnSolver/internal/auth"
	"ColumnSolver/internal/config"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an API token signed with TOKEN_KEY",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if !cfg.AuthEnabled() {
			return errors.New("TOKEN_KEY is not set")
		}
		env := &auth.Authenv{JWTkey: cfg.TokenKey}
		tok, err := env.IssueToken(tokenSubject, tokenTTL, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "token subject, e.g. a user or client name")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 720*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("subject")
	rootCmd.AddCommand(tokenCmd)
}

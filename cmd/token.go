// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/merchant-team-service/internal/remote"
)

var tokenCredentials remote.Credentials

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print an access token for the remote authority",
	Long:  `Obtain an access token with the OAuth2 client credentials flow, the token endpoint is discovered from --issuer-url when --token-url is empty.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := remote.TokenSource(cmd.Context(), tokenCredentials)
		if err != nil {
			return err
		}

		token, err := ts.Token()
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	flags := tokenCmd.Flags()
	flags.StringVar(&tokenCredentials.ClientID, "client-id", "", "OAuth2 client ID")
	flags.StringVar(&tokenCredentials.ClientSecret, "client-secret", "", "OAuth2 client secret")
	flags.StringVar(&tokenCredentials.TokenURL, "token-url", "", "Token endpoint")
	flags.StringVar(&tokenCredentials.IssuerURL, "issuer-url", "", "Issuer URL used for OIDC discovery")
	flags.StringSliceVar(&tokenCredentials.Scopes, "scopes", nil, "Scopes (comma-separated)")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")
}

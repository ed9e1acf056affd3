// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/merchant-team-service/internal/types"
)

var inviteRole string

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage the team through a running service",
}

var listMembersCmd = &cobra.Command{
	Use:   "list",
	Short: "List team members",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := newTeamClient(httpEndpoint, accessToken).Members(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		printMembers(os.Stdout, list.Members)
		fmt.Printf("%d members\n", list.TotalMembers)
		return nil
	},
}

var getMemberCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a single member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		member, err := newTeamClient(httpEndpoint, accessToken).Member(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}

		printMembers(os.Stdout, []types.TeamMember{*member})
		return nil
	},
}

var inviteMemberCmd = &cobra.Command{
	Use:   "invite [name] [email]",
	Short: "Invite a new member",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := types.ParseRole(inviteRole)
		if err != nil {
			return err
		}

		member, err := newTeamClient(httpEndpoint, accessToken).Invite(context.Background(), args[0], args[1], role)
		if err != nil {
			return fmt.Errorf("failed to invite member: %w", err)
		}

		fmt.Printf("Invitation sent to %s as %s\n", member.Email, member.Role)
		return nil
	},
}

var updateRoleCmd = &cobra.Command{
	Use:   "role [id] [role]",
	Short: "Change the role of a member",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := types.ParseRole(args[1])
		if err != nil {
			return err
		}

		if err := newTeamClient(httpEndpoint, accessToken).UpdateRole(context.Background(), args[0], role); err != nil {
			return fmt.Errorf("failed to update role: %w", err)
		}

		fmt.Printf("Member %s is now %s\n", args[0], role)
		return nil
	},
}

var updateStatusCmd = &cobra.Command{
	Use:   "status [id] [status]",
	Short: "Activate, deactivate or suspend a member",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := types.ParseStatus(args[1])
		if err != nil {
			return err
		}

		if err := newTeamClient(httpEndpoint, accessToken).UpdateStatus(context.Background(), args[0], status); err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}

		fmt.Printf("Member %s is now %s\n", args[0], status)
		return nil
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a member from the team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newTeamClient(httpEndpoint, accessToken).Remove(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}

		fmt.Printf("Member removed: %s\n", args[0])
		return nil
	},
}

var resendInvitationCmd = &cobra.Command{
	Use:   "resend [id]",
	Short: "Resend the invitation of a pending member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newTeamClient(httpEndpoint, accessToken).ResendInvitation(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to resend invitation: %w", err)
		}

		fmt.Printf("Invitation resent: %s\n", args[0])
		return nil
	},
}

var refreshTeamCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Reload members and permissions from the remote authority",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newTeamClient(httpEndpoint, accessToken).Refresh(context.Background()); err != nil {
			return fmt.Errorf("failed to refresh team: %w", err)
		}

		fmt.Println("Team refreshed")
		return nil
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the current user's role and permissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newTeamClient(httpEndpoint, accessToken)
		ctx := context.Background()

		me, err := client.Me(ctx)
		if err != nil {
			return fmt.Errorf("failed to get current user: %w", err)
		}

		pending, err := client.Pending(ctx)
		if err != nil {
			return fmt.Errorf("failed to get pending operations: %w", err)
		}

		permissions := make([]string, 0, len(me.Permissions))
		for _, p := range me.Permissions {
			permissions = append(permissions, string(p))
		}

		fmt.Printf("ID:          %s\n", me.ID)
		fmt.Printf("Role:        %s\n", me.Role)
		fmt.Printf("Permissions: %s\n", strings.Join(permissions, ", "))
		fmt.Printf("Pending:     %d\n", len(pending))
		if me.Error != "" {
			fmt.Printf("Last error:  %s\n", me.Error)
		}
		return nil
	},
}

func printMembers(out io.Writer, members []types.TeamMember) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tSTATUS\tINVITED_AT")
	for _, m := range members {
		invited := ""
		if !m.InvitedAt.IsZero() {
			invited = m.InvitedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Email, m.Role, m.Status, invited)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(membersCmd)

	membersCmd.AddCommand(listMembersCmd)
	membersCmd.AddCommand(getMemberCmd)
	membersCmd.AddCommand(inviteMemberCmd)
	membersCmd.AddCommand(updateRoleCmd)
	membersCmd.AddCommand(updateStatusCmd)
	membersCmd.AddCommand(removeMemberCmd)
	membersCmd.AddCommand(resendInvitationCmd)
	membersCmd.AddCommand(refreshTeamCmd)
	membersCmd.AddCommand(meCmd)

	inviteMemberCmd.Flags().StringVar(&inviteRole, "role", string(types.RoleStaff), "Role of the invited member")
}

package cmd

import (
	"fmt"

	teamsvc "edu_crm/internal/api/team/service"

	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminPassword string
	adminName     string

	createAdminCmd = &cobra.Command{
		Use:   "create-admin",
		Short: "Create the first administrator",
		Long: `Creates an active admin team member unless an admin already exists.

Flags override ADMIN_EMAIL, ADMIN_PASSWORD and ADMIN_NAME.`,
		RunE: runCreateAdmin,
	}
)

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")
	createAdminCmd.Flags().StringVar(&adminName, "name", "", "admin display name")
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	s, err := connect()
	if err != nil {
		return err
	}
	defer s.Close()

	email, password, name := firstNonEmpty(adminEmail, s.cfg.AdminEmail), firstNonEmpty(adminPassword, s.cfg.AdminPassword), firstNonEmpty(adminName, s.cfg.AdminName)
	team, err := teamsvc.NewTeamService(nil)
	if err != nil {
		return err
	}
	created, err := team.EnsureAdmin(commandContext(cmd), email, password, name)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "administrator %s created\n", email)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "an administrator already exists, nothing to do")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

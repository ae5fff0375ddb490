package cmd

import (
	"fmt"
	"os"

	formsvc "edu_crm/internal/api/form/service"
	teamsvc "edu_crm/internal/api/team/service"

	"github.com/spf13/cobra"
)

var importLeadsCmd = &cobra.Command{
	Use:   "import-leads <file.xlsx>",
	Short: "Import leads from a spreadsheet",
	Long: `Reads the first sheet of an xlsx workbook. The header row names the columns
(name, email, phone, course, source, city, productCompany). Rows without a name
or a valid phone are skipped and reported. Imported leads are unread and unassigned.`,
	Args: cobra.ExactArgs(1),
	RunE: runImportLeads,
}

func runImportLeads(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := connect()
	if err != nil {
		return err
	}
	defer s.Close()

	team, err := teamsvc.NewTeamService(nil)
	if err != nil {
		return err
	}
	forms, err := formsvc.NewFormService(team, nil, nil, nil)
	if err != nil {
		return err
	}
	result, err := forms.Import(commandContext(cmd), nil, f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "imported %d leads, skipped %d rows\n", result.Imported, len(result.Skipped))
	for _, row := range result.Skipped {
		fmt.Fprintf(out, "  row %d: %s\n", row.Row, row.Reason)
	}
	return nil
}

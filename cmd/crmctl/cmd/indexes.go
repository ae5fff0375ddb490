package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"edu_crm/internal/bootstrap"
	"edu_crm/internal/database"

	"github.com/spf13/cobra"
)

var (
	indexesDryRun bool

	ensureIndexesCmd = &cobra.Command{
		Use:   "ensure-indexes",
		Short: "Create missing collections and the indexes declared on each model",
		RunE:  runEnsureIndexes,
	}
)

func init() {
	ensureIndexesCmd.Flags().BoolVar(&indexesDryRun, "dry-run", false, "print the index plan without connecting")
}

func runEnsureIndexes(cmd *cobra.Command, _ []string) error {
	if indexesDryRun {
		bootstrap.InitColNames()
		return printIndexPlan(cmd.OutOrStdout(), bootstrap.Collections())
	}
	s, err := connect()
	if err != nil {
		return err
	}
	defer s.Close()
	if err := bootstrap.EnsureSchema(commandContext(cmd), s.db); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "collections and indexes are up to date")
	return nil
}

func printIndexPlan(out io.Writer, cols []bootstrap.Collection) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLLECTION\tINDEX\tKEYS\tUNIQUE")
	for _, c := range cols {
		specs, err := database.IndexSpecs(c.Model)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		for _, spec := range specs {
			fmt.Fprintf(w, "%s\t%s\t%v\t%t\n", c.Name, spec.Name, spec.Keys, spec.Unique)
		}
	}
	return w.Flush()
}

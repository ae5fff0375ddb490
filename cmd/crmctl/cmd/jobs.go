package cmd

import (
	"fmt"
	"sort"
	"strings"

	"edu_crm/internal/bootstrap"
	"edu_crm/internal/worker"

	"github.com/spf13/cobra"
)

var runJobCmd = &cobra.Command{
	Use:       "run-job <" + worker.JobFollowUps + "|" + worker.JobNotificationCleanup + ">",
	Short:     "Run one scheduled job now",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{worker.JobFollowUps, worker.JobNotificationCleanup},
	RunE:      runJob,
}

func runJob(cmd *cobra.Command, args []string) error {
	s, err := connect()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := commandContext(cmd)
	services, err := bootstrap.NewServices(ctx, s.cfg)
	if err != nil {
		return err
	}
	defer services.Wait()

	jobs := map[string]worker.Job{}
	for _, job := range services.Jobs(s.cfg) {
		jobs[job.Name] = job
	}
	job, ok := jobs[args[0]]
	if !ok {
		names := make([]string, 0, len(jobs))
		for name := range jobs {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown job %q, expected one of %s", args[0], strings.Join(names, ", "))
	}
	if err := worker.RunJob(ctx, job); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s finished\n", job.Name)
	return nil
}

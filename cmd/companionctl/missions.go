package main

import (
	"context"
	"fmt"
	"io"

	"companion/internal/domain/gamification"
	"companion/internal/errors"
	"companion/internal/usecase"

	"github.com/spf13/cobra"
)

var (
	missionPeriod string
	missionForce  bool
)

func init() {
	assignCmd.Flags().StringVar(&missionPeriod, "period", string(gamification.PeriodDaily), "mission period (daily or weekly)")
	assignCmd.Flags().BoolVar(&missionForce, "force", false, "replace missions already assigned for the current period")

	missionsCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(missionsCmd)
}

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "Manage periodic missions",
}

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign missions of a period to every onboarded user",
	Args:  cobra.NoArgs,
	RunE:  runAssign,
}

func runAssign(cmd *cobra.Command, _ []string) error {
	period, err := gamification.ParsePeriod(missionPeriod)
	if err != nil {
		return err
	}

	var missionUC usecase.MissionUsecase

	return withApp(cmd.Context(), func() error {
		return assignMissions(cmd.Context(), cmd.OutOrStdout(), missionUC, period, missionForce)
	}, &missionUC)
}

// assignMissions prints the report whenever one is returned, including after a
// partial failure, so the operator sees how far the run got.
func assignMissions(
	ctx context.Context,
	out io.Writer,
	missionUC usecase.MissionUsecase,
	period gamification.Period,
	force bool,
) error {
	report, err := missionUC.AssignMissions(ctx, period, force)
	if report != nil {
		printReport(out, report)
	}
	if err != nil {
		return err
	}

	if report != nil && report.FailedBatches > 0 {
		return errors.Errorf("%d batches failed", report.FailedBatches)
	}

	return nil
}

func printReport(out io.Writer, report *usecase.AssignmentReport) {
	fmt.Fprintf(out, "period:         %s\n", report.Period)
	fmt.Fprintf(out, "eligible:       %d\n", report.Eligible)
	fmt.Fprintf(out, "assigned:       %d\n", report.Assigned)
	fmt.Fprintf(out, "skipped:        %d\n", report.Skipped)
	fmt.Fprintf(out, "failed batches: %d\n", report.FailedBatches)
	fmt.Fprintf(out, "duration:       %s\n", report.Duration)
}

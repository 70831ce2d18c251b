package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/list_brands"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/list_events"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/list_programs"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/program_board"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/program_detail"
	"github.com/light-bringer/incentive-tracker/internal/services"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show portfolio totals and rewards per brand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printSummary(cmd)
		},
	}
}

func (a *app) printSummary(cmd *cobra.Command) error {
	summary, err := a.svc.DashboardSummary.Execute(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), a.renderer.Summary(summary))
	return nil
}

func newBrandsCmd(a *app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "brands",
		Short: "List brands with their program counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.svc.ListBrands.Execute(cmd.Context(), &list_brands.Request{Search: search})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.renderer.Brands(resp))
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "only brands whose name contains this text")
	return cmd
}

func newProgramsCmd(a *app) *cobra.Command {
	var (
		brandID string
		search  string
		board   bool
	)

	cmd := &cobra.Command{
		Use:   "programs",
		Short: "List programs as a table or a status board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if board {
				columns, err := a.svc.ProgramBoard.Execute(cmd.Context(), &program_board.Request{BrandID: brandID, Search: search})
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), a.renderer.Board(columns))
				return nil
			}

			programs, err := a.svc.ListPrograms.Execute(cmd.Context(), &list_programs.Request{BrandID: brandID, Search: search})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.renderer.Programs(programs))
			return nil
		},
	}
	cmd.Flags().StringVarP(&brandID, "brand", "b", domain.AllBrands, `brand id, or "all"`)
	cmd.Flags().StringVarP(&search, "search", "s", "", "only programs whose type contains this text")
	cmd.Flags().BoolVar(&board, "board", false, "group programs by status")
	return cmd
}

func newProgramCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "program <id>",
		Short: "Show one program with its metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.svc.ProgramDetail.Execute(cmd.Context(), &program_detail.Request{ProgramID: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.renderer.ProgramDetail(detail))
			return nil
		},
	}
}

func newApplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <changes.yaml>",
		Short: "Apply a batch of brand and program changes, then show the summary",
		Long: `Applies create, update and delete operations from a YAML file in order.

Example:
  changes:
    - op: create_brand
      brand: {name: TECNO}
    - op: update_program
      id: PROG004
      program: {brandId: "3", typeProgram: Sell Out, ...}
    - op: delete_brand
      id: "2"

Rejected records are listed with their field errors; the rest of the batch
still runs. Changes live only for the duration of the command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := services.LoadChangeSet(args[0])
			if err != nil {
				return err
			}

			results := a.svc.Apply(cmd.Context(), cs)
			fmt.Fprint(cmd.OutOrStdout(), a.renderer.ApplyResults(results))
			fmt.Fprintln(cmd.OutOrStdout())
			return a.printSummary(cmd)
		},
	}
}

func newEventsCmd(a *app) *cobra.Command {
	var (
		eventType string
		limit     int
		changes   string
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the change log",
		Long: `Shows the change log, most recent first. Records live in memory, so the
log is empty unless --changes applies a batch first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if changes != "" {
				cs, err := services.LoadChangeSet(changes)
				if err != nil {
					return err
				}
				a.svc.Apply(cmd.Context(), cs)
			}

			events, err := a.svc.ListEvents.Execute(cmd.Context(), &list_events.Request{EventType: eventType, Limit: limit})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.renderer.Events(events))
			return nil
		},
	}
	cmd.Flags().StringVar(&eventType, "type", "", `only events of this type, e.g. "program.created"`)
	cmd.Flags().IntVar(&limit, "limit", list_events.DefaultLimit, "maximum number of events")
	cmd.Flags().StringVar(&changes, "changes", "", "apply this batch file before listing")
	return cmd
}

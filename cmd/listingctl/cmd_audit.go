package main

import (
	"fmt"
	"text/tabwriter"

	"autozar_backend/internal/models"
	"autozar_backend/internal/services"

	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	var (
		asJSON bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "validate [category...]",
		Short: "Check persisted listing records and report malformed ones",
		Long: `validate decodes every persisted record of the given categories (all
categories when none are named) and counts valid and malformed records.
Malformed records are left in place; they are skipped when listings are read.`,
		Args: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				if !models.Category(a).Valid() {
					return fmt.Errorf("unknown category %q", a)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := models.Categories
			if len(args) > 0 {
				categories = make([]models.Category, len(args))
				for i, a := range args {
					categories[i] = models.Category(a)
				}
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			reports := make([]services.AuditReport, 0, len(categories))
			malformed := 0
			for _, c := range categories {
				r, err := s.services.PublicationGate.Audit(cmd.Context(), c)
				if err != nil {
					return err
				}
				malformed += r.Malformed
				reports = append(reports, r)
			}

			if asJSON {
				if err := printJSON(cmd.OutOrStdout(), reports); err != nil {
					return err
				}
			} else {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "CATEGORY\tVALID\tMALFORMED\tPUBLISHED\tDRAFT")
				for _, r := range reports {
					fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", r.Category, r.Valid, r.Malformed,
						r.ByStatus[models.ListingStatusPublished], r.ByStatus[models.ListingStatusDraft])
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}

			if strict && malformed > 0 {
				return fmt.Errorf("%d malformed records", malformed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print reports as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any record is malformed")
	return cmd
}

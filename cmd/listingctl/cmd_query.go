package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"text/tabwriter"

	"autozar_backend/internal/algorithms"
	"autozar_backend/internal/dto"
	"autozar_backend/internal/models"
	"autozar_backend/internal/validator"

	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"
)

type queryFlags struct {
	filters  []string
	text     string
	sort     string
	page     int
	pageSize int
	asJSON   bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.filters, "filter", "f", nil, "filter as key=value, same keys as the HTTP query (repeatable)")
	cmd.Flags().StringVarP(&f.text, "query", "q", "", "free-text search")
	cmd.Flags().StringVar(&f.sort, "sort", "", "newest, priceAsc, priceDesc, mileageAsc or mileageDesc")
}

func (f *queryFlags) values() (url.Values, error) {
	values, err := filterValues(f.filters)
	if err != nil {
		return nil, err
	}
	if f.text != "" {
		values.Set("q", f.text)
	}
	if f.sort != "" {
		values.Set("sort", f.sort)
	}
	if f.page > 0 {
		values.Set("page", strconv.Itoa(f.page))
	}
	if f.pageSize > 0 {
		values.Set("page_size", strconv.Itoa(f.pageSize))
	}
	return values, nil
}

// buildListingQuery binds values onto the category's query form exactly as
// the HTTP layer does.
func buildListingQuery(category string, values url.Values) (dto.ListingQuery, error) {
	q, err := dto.NewListingQuery(models.Category(category))
	if err != nil {
		return nil, err
	}
	if err := binding.MapFormWithTag(q, values, "form"); err != nil {
		return nil, fmt.Errorf("bind filters: %w", err)
	}
	if err := validator.New().Validate(q); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return nil, fmt.Errorf("invalid filters: %v", vErr.Errors)
		}
		return nil, err
	}
	return q, nil
}

func newQueryCmd() *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "query <category>",
		Short: "Run a search against visible listings",
		Example: `  listingctl query vehicle -f manufacturer=Toyota -f min_year=2015 --sort priceAsc
  listingctl query tire -f season=winter --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := flags.values()
			if err != nil {
				return err
			}
			q, err := buildListingQuery(args[0], values)
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			resp, err := s.services.QueryService.Search(cmd.Context(), q)
			if err != nil {
				return err
			}
			if flags.asJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			return printPage(cmd.OutOrStdout(), resp)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&flags.page, "page", 1, "page number")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "page size (default from config)")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print the raw response")
	return cmd
}

func printPage(w io.Writer, resp *dto.PaginatedResponse) error {
	items, _ := resp.Data.([]dto.ListItemView)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIER\tTITLE\tPRICE (MNT)\tREGION")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", it.ID, it.Tier, it.Title, it.PriceMnt, it.Region)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "page %d/%d, %d total\n", resp.Page, resp.TotalPages, resp.Total)
	return err
}

func newFacetsCmd() *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "facets <category> <dimension>",
		Short: "Count listings per value of one dimension",
		Example: `  listingctl facets vehicle manufacturer -f fuel=hybrid
  listingctl facets tire rim`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := flags.values()
			if err != nil {
				return err
			}
			q, err := buildListingQuery(args[0], values)
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			resp, err := s.services.QueryService.Facets(cmd.Context(), q, algorithms.Dimension(args[1]))
			if err != nil {
				return err
			}
			if flags.asJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "%s\tCOUNT\n", args[1])
			for _, fc := range resp.Values {
				fmt.Fprintf(tw, "%s\t%d\n", fc.Value, fc.Count)
			}
			return tw.Flush()
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print the raw response")
	return cmd
}

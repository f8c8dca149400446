package main

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

var (
	queryFacets   = map[types.FacetName]*[]string{}
	queryKeywords string
	queryPage     int
	queryJson     bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Evaluate one listing against the data directory and print it",
	Example: `  finder query --phase live --phase beta --keywords pupil
  finder query --group funding --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		f, err := newFinder(cfg, newStorage(cfg))
		if err != nil {
			return err
		}
		env := f.Evaluate(cmd.Context(), buildRequestURI())
		if queryJson {
			body, err := sonic.ConfigStd.MarshalIndent(env, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))
			return err
		}
		return printEnvelope(cmd.OutOrStdout(), env)
	},
}

func init() {
	for _, name := range types.FacetOrder {
		queryFacets[name] = queryCmd.Flags().StringArray(string(name), nil, fmt.Sprintf("%s token, may be repeated", name.Heading()))
	}
	queryCmd.Flags().StringVarP(&queryKeywords, "keywords", "k", "", "Match product names containing the keywords")
	queryCmd.Flags().IntVarP(&queryPage, "page", "p", 1, "Page number")
	queryCmd.Flags().BoolVar(&queryJson, "json", false, "Print the full result envelope as json")
}

// buildRequestURI turns the flags into the query string the api accepts.
func buildRequestURI() string {
	values := url.Values{}
	for _, name := range types.FacetOrder {
		for _, token := range *queryFacets[name] {
			values.Add(string(name), token)
		}
	}
	if queryKeywords != "" {
		values.Set("keywords", queryKeywords)
	}
	values.Set("page", strconv.Itoa(queryPage))
	return "/products?" + values.Encode()
}

func printEnvelope(w io.Writer, env *types.ResultEnvelope) error {
	if env.Degraded {
		fmt.Fprintf(w, "degraded result: %s\n", strings.Join(env.Problems, "; "))
	}
	fmt.Fprintf(w, "%d results, page %d of %d\n", env.TotalResults, env.CurrentPage, env.TotalPages)
	for _, f := range env.SelectedFilters {
		fmt.Fprintf(w, "  filter %s: %s\n", f.Heading, f.Text)
	}
	for _, r := range env.Page {
		fmt.Fprintf(w, "%-8s %-50s %-12s %s\n", r.Id, r.Name, r.Phase, r.Parent)
	}
	for _, name := range types.FacetOrder {
		options, ok := env.Facets[name]
		if !ok || len(options) == 0 {
			continue
		}
		parts := make([]string, 0, len(options))
		for _, o := range options {
			parts = append(parts, fmt.Sprintf("%s (%d)", o.Text, o.Count))
		}
		fmt.Fprintf(w, "%s: %s\n", name.Heading(), strings.Join(parts, ", "))
	}
	return nil
}

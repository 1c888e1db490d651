package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"realmctl/internal/config"
	"realmctl/internal/realm"
	"realmctl/pkg/logging"
)

var (
	statusSortBy string
	statusDesc   bool
	statusQuiet  bool
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [region]",
		Short: "Fetch realm status once and print it as a table",
		Long: `Runs the fetch pipeline once for a region and prints one row per realm.
Without a region argument the configured default region is used.

Exit status is non-zero when the pipeline fails (missing credential, index
fetch failure, empty index, or every cluster fetch failing). Individual
cluster failures are skipped and reported as a count.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStatus,
	}
	cmd.Flags().StringVar(&statusSortBy, "sort", "", "sort column: realm, type, status, or population")
	cmd.Flags().BoolVar(&statusDesc, "desc", false, "sort in descending order")
	cmd.Flags().BoolVar(&statusQuiet, "quiet", false, "suppress the progress spinner")
	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	logging.InitForCLI(logging.LevelWarn, os.Stderr)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	region := cfg.DefaultRegion
	if len(args) == 1 {
		region = args[0]
	}
	rc, ok := cfg.Regions[region]
	if !ok {
		return fmt.Errorf("unknown region %q", region)
	}

	col := realm.ColumnNone
	if statusSortBy != "" {
		col, ok = realm.ParseColumn(statusSortBy)
		if !ok {
			return fmt.Errorf("unknown sort column %q", statusSortBy)
		}
	}
	dir := realm.Ascending
	if statusDesc {
		dir = realm.Descending
	}

	params := realm.Params{
		APIURL:    rc.APIURL,
		Namespace: rc.Namespace,
		Locale:    rc.Locale,
		Token:     config.ResolveToken(tokenFlag),
	}

	var s *spinner.Spinner
	if !statusQuiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Fetching %s realm status...", region)
		s.Start()
	}

	rows, skipped, err := realm.FetchRows(context.Background(), params, time.Duration(cfg.RequestInterval))

	if s != nil {
		s.Stop()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", region, err)
	}

	renderStatusTable(realm.SortRows(rows, col, dir))
	fmt.Printf("%d realms\n", len(rows))
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d clusters skipped\n", skipped)
	}
	return nil
}

func renderStatusTable(rows []realm.RealmRow) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Realm", "Type", "Status", "Population", "Queue"})

	for _, r := range rows {
		status := r.StatusName
		if status == "" {
			status = string(r.Status)
		}
		if r.Status == realm.StatusUp {
			status = text.FgGreen.Sprint(status)
		} else {
			status = text.FgRed.Sprint(status)
		}
		pop := r.PopulationName
		if pop == "" {
			pop = string(r.Population)
		}
		queue := "-"
		if r.HasQueue {
			queue = "yes"
		}
		t.AppendRow(table.Row{r.Realm, r.RealmType, status, pop, queue})
	}
	t.Render()
}

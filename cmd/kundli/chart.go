package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phrazzld/kundli-api/internal/api"
	"github.com/phrazzld/kundli-api/internal/app"
	"github.com/phrazzld/kundli-api/internal/domain"
	"github.com/phrazzld/kundli-api/internal/domain/rules"
	"github.com/phrazzld/kundli-api/internal/service"
)

type chartOptions struct {
	in     domain.BirthInput
	gender string
	format string
	only   string
}

func (c *cli) newChartCmd() *cobra.Command {
	var opts chartOptions

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Cast a chart and print its yogas and doshas",
		Example: `  kundli chart --date 1990-08-15 --time 05:00 --lat 28.61 --lon 77.21 --tz 5.5
  kundli chart --mode static --snapshot snapshot.json --date 2000-01-01 --time 12:00 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runChart(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.in.Date, "date", "", "birth date, YYYY-MM-DD")
	f.StringVar(&opts.in.Time, "time", "", "local birth time, HH:MM (24 hour)")
	f.Float64Var(&opts.in.Latitude, "lat", 0, "latitude in decimal degrees")
	f.Float64Var(&opts.in.Longitude, "lon", 0, "longitude in decimal degrees")
	f.Float64Var(&opts.in.UTCOffset, "tz", 0, "UTC offset in hours, e.g. 5.5")
	f.StringVar(&opts.in.Name, "name", "", "name to echo in the output")
	f.StringVar(&opts.gender, "gender", "", "gender to echo in the output")
	f.StringVar(&opts.format, "format", "text", "output format: text or json")
	f.StringVar(&opts.only, "only", "all", "sections to print: all, planets, yogas or doshas")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func (c *cli) runChart(cmd *cobra.Command, opts chartOptions) error {
	switch opts.format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
	switch opts.only {
	case "all", "planets", "yogas", "doshas":
	default:
		return fmt.Errorf("unknown section %q", opts.only)
	}

	cfg, l, err := c.load(cmd)
	if err != nil {
		return err
	}
	provider, err := app.NewProvider(cfg.Ephemeris, l)
	if err != nil {
		return err
	}
	svc, err := app.NewKundliService(cfg, provider, l)
	if err != nil {
		return err
	}

	in := opts.in
	in.Gender = domain.Gender(opts.gender)
	k, err := svc.Generate(cmd.Context(), in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.format == "json" {
		return writeJSON(out, k, opts.only)
	}
	return writeText(out, k, opts.only)
}

func writeJSON(w io.Writer, k *service.Kundli, only string) error {
	resp := api.NewComprehensiveResponse(k)
	var v any = resp
	switch only {
	case "planets":
		v = resp.Planets
	case "yogas":
		v = resp.Yogas
	case "doshas":
		v = resp.Doshas
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeText(w io.Writer, k *service.Kundli, only string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if only == "all" || only == "planets" {
		asc := k.Chart.Ascendant()
		fmt.Fprintf(tw, "Lagna\t%s\t%.2f°\n\n", asc.Sign.Name(), asc.Degree)
		fmt.Fprintln(tw, "Body\tSign\tDegree\tHouse\tNavamsha\tStrength")
		for _, bp := range k.Chart.Bodies() {
			fmt.Fprintf(tw, "%s\t%s\t%.2f°\t%d\t%s\t%s\n",
				bp.Body, bp.Sign.Name(), bp.Degree, bp.House, bp.Navamsha.Name(), bp.Strength)
		}
		if len(k.Missing) > 0 {
			names := make([]string, len(k.Missing))
			for i, b := range k.Missing {
				names[i] = string(b)
			}
			fmt.Fprintf(tw, "\nUnavailable\t%s\n", strings.Join(names, ", "))
		}
	}
	if only == "all" || only == "yogas" {
		writeFindings(tw, "Yogas", k.Yogas)
	}
	if only == "all" || only == "doshas" {
		writeFindings(tw, "Doshas", k.Doshas)
	}
	return tw.Flush()
}

func writeFindings(w io.Writer, title string, fs []rules.Finding) {
	fmt.Fprintf(w, "\n%s (%d)\n", title, len(fs))
	for _, f := range fs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.Name, f.Level, f.Description)
	}
}

package cli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ibexa/solr-search-engine/internal/aggregation"
	"github.com/ibexa/solr-search-engine/internal/content"
	"github.com/ibexa/solr-search-engine/internal/query"
	"github.com/ibexa/solr-search-engine/internal/store"
)

// LocationsOptions holds flags for the locations command.
type LocationsOptions struct {
	*RootOptions
	Database string
	Seed     string
}

// LocationsResult is the payload of a successful locations lookup.
type LocationsResult struct {
	Locations map[string]content.Location `json:"locations"`
	Missing   []string                    `json:"missing,omitempty"`
}

// NewLocationsCommand creates the locations command.
func NewLocationsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LocationsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "locations <key>...",
		Short: "Resolve location term aggregation keys",
		Long: `Resolve the bucket keys of a location term aggregation to stored
locations, loading all of them in one batch.

--seed imports a YAML list of locations into the database first.

Example:
  solrquery locations --db ./locations.db 2 54 47
  solrquery locations --db ./locations.db --seed tree.yaml 2`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocations(cmd.Context(), opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.Seed, "seed", "", "YAML file of locations to import before resolving")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runLocations(ctx context.Context, opts *LocationsOptions, keys []string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := store.Open(opts.Database)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	if opts.Seed != "" {
		locs, err := loadSeed(opts.Seed)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeReadFailed, "failed to load seed", err)
		}
		if err := st.SaveLocations(ctx, locs); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to import seed", err)
		}
		slog.Info("seed imported", "file", opts.Seed, "locations", len(locs))
	}

	agg := query.Aggregation{Name: "locations", Type: query.TermLocation}
	mapper, err := aggregation.ForAggregation(agg.Type, st)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, "no key mapper", err)
	}

	mapped, err := mapper.Map(ctx, agg, query.DefaultLanguageSettings(), keys)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeInvalidArgs, "failed to resolve keys", err)
	}

	result := LocationsResult{Locations: make(map[string]content.Location, len(mapped))}
	for _, key := range keys {
		loc, ok := mapped[key].(content.Location)
		if !ok {
			result.Missing = append(result.Missing, key)
			continue
		}
		result.Locations[key] = loc
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(formatLocationsText(keys, result))
}

func loadSeed(path string) ([]content.Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var locs []content.Location
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&locs); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return locs, nil
}

// formatLocationsText renders one line per key in argument order.
func formatLocationsText(keys []string, r LocationsResult) string {
	var b strings.Builder
	for _, key := range keys {
		loc, ok := r.Locations[key]
		if !ok {
			fmt.Fprintf(&b, "%s\tnot found\n", key)
			continue
		}
		fmt.Fprintf(&b, "%s\t%s\tcontent=%d parent=%d depth=%d", key, loc.PathString, loc.ContentID, loc.ParentLocationID, loc.Depth)
		if loc.Hidden {
			b.WriteString(" hidden")
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

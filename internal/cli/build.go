package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ibexa/solr-search-engine/internal/config"
	"github.com/ibexa/solr-search-engine/internal/content"
	"github.com/ibexa/solr-search-engine/internal/corefilter"
	"github.com/ibexa/solr-search-engine/internal/endpoint"
	"github.com/ibexa/solr-search-engine/internal/query"
	"github.com/ibexa/solr-search-engine/internal/querysolr"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	ConfigPath   string
	DocumentType string
}

// BuildResult is the payload of a successful build.
type BuildResult struct {
	DocumentType string            `json:"document_type"`
	Params       map[string]string `json:"params"`
	Shards       []string          `json:"shards,omitempty"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build <query.yaml>",
		Short: "Build Solr request parameters for a query",
		Long: `Build Solr request parameters for a query document.

The query is restricted to the document type and composed with the language
filter derived from the configuration. Without --config the default language
settings are used: main translations only, always-available fallback on.

Example:
  solrquery build query.yaml --config solr.cue --type location`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to CUE configuration")
	cmd.Flags().StringVar(&opts.DocumentType, "type", string(query.DocumentTypeContent), "document type (content|location)")

	return cmd
}

func runBuild(ctx context.Context, opts *BuildOptions, path string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd)

	documentType, ok := query.ParseDocumentType(opts.DocumentType)
	if !ok {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArgs, "invalid --type",
			fmt.Errorf("%q is not one of content, location", opts.DocumentType))
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidConfig, "failed to load config", err)
	}

	q, err := query.LoadFile(path)
	if err != nil {
		var readErr *os.PathError
		if errors.As(err, &readErr) {
			return formatter.Fail(ExitCommandError, ErrCodeReadFailed, "failed to read query", err)
		}
		return formatter.Fail(ExitFailure, ErrCodeInvalidQuery, "invalid query", err)
	}

	resolver := cfg.Resolver()
	q = corefilter.NewNativeCoreFilter(resolver).Apply(q, cfg.LanguageSettings, documentType)

	params, err := querysolr.NewConverter(registryFor(documentType, cfg.Permissions())).Convert(ctx, q)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeRenderFailed, "failed to render query", err)
	}

	result := BuildResult{
		DocumentType: string(documentType),
		Params:       make(map[string]string, len(params)),
	}
	for key := range params {
		result.Params[key] = params.Get(key)
	}

	if len(resolver.Endpoints()) > 0 {
		shards, err := resolver.SearchTargets(cfg.LanguageSettings)
		if err != nil {
			code := ErrCodeGeneric
			if errors.Is(err, endpoint.ErrNoEndpoint) {
				code = ErrCodeNoEndpoint
			}
			return formatter.Fail(ExitCommandError, code, "failed to resolve search targets", err)
		}
		result.Shards = shards
	}

	slog.Info("query built",
		"file", path,
		"document_type", documentType,
		"shards", len(result.Shards),
	)

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(formatBuildText(result))
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Parse(nil, "<default>")
	}
	return config.Load(path)
}

func registryFor(documentType query.DocumentType, permissions content.PermissionResolver) *querysolr.Registry {
	if documentType == query.DocumentTypeLocation {
		return querysolr.NewLocationRegistry(permissions)
	}
	return querysolr.NewContentRegistry()
}

// formatBuildText renders one "key: value" line per parameter, sorted.
func formatBuildText(r BuildResult) string {
	keys := make([]string, 0, len(r.Params))
	for key := range r.Params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s: %s\n", key, r.Params[key])
	}
	if len(r.Shards) > 0 {
		fmt.Fprintf(&b, "shards: %s\n", strings.Join(r.Shards, ","))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gi8lino/jirafind/internal/config"
	"github.com/gi8lino/jirafind/internal/flag"
	"github.com/gi8lino/jirafind/internal/jira"
	"github.com/gi8lino/jirafind/internal/jql"
	"github.com/gi8lino/jirafind/internal/logging"
	"github.com/gi8lino/jirafind/internal/render"
	"github.com/gi8lino/jirafind/internal/utils"

	"github.com/containeroo/tinyflags"
)

// Run executes one search invocation: flags → config → query → request → output.
func Run(ctx context.Context, version, commit string, args []string, w io.Writer, getEnv func(string) string) error {
	// Create a new context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Parse command-line flags
	flags, err := flag.ParseArgs(version, args, w, getEnv)
	if err != nil {
		if tinyflags.IsHelpRequested(err) || tinyflags.IsVersionRequested(err) {
			fmt.Fprint(w, err.Error()) // nolint:errcheck
			return nil
		}
		return fmt.Errorf("parsing error: %w", err)
	}

	// Setup logger. Only debug messages are emitted so the issue
	// listing stays clean on default settings.
	logger := logging.SetupLogger(flags.LogFormat, flags.Debug, w)
	logger.Debug("starting jirafind", "version", version, "commit", commit)

	// Load optional config file; explicit flags win over file values.
	cfg := config.Config{}
	if flags.ConfigFile != "" {
		cfg, err = config.Load(flags.ConfigFile)
		if err != nil {
			return fmt.Errorf("loading config error: %w", err)
		}
	}
	if flags.BaseURL != "" {
		cfg.BaseURL = flags.BaseURL
	}
	if flags.MaxResults > 0 {
		cfg.MaxResults = flags.MaxResults
	}
	if len(flags.Fields) > 0 {
		cfg.Fields = flags.Fields
	}
	if flags.SkipTLSVerify {
		cfg.SkipTLSVerify = true
	}

	// Credentials must be present before any network activity.
	if err := cfg.ResolveCredentials(getEnv); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	filter := resolveFilter(flags, cfg)
	query := jql.Build(filter, cfg.MaxResults, cfg.Fields)

	apiURL, err := cfg.APIURL()
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	auth := jira.NewBearerAuth(cfg.BearerToken)
	client := jira.NewClient(apiURL, auth, cfg.SkipTLSVerify, jira.DefaultConnectTimeout, jira.DefaultRequestTimeout)

	logger.Debug("searching",
		"user", cfg.Username,
		"jql", query.JQL,
		"maxResults", query.MaxResults,
		"auth", utils.ObfuscateHeader(utils.GetAuthorizationHeader(auth)),
	)

	result, err := client.Search(ctx, query)
	if err != nil {
		return err
	}

	return render.Issues(w, result, filter.Describe(), cfg.BaseURL)
}

// resolveFilter picks the search intent. Precedence: --label over --labels
// over --assignee; without any filter flag the configured or built-in
// default assignee is used.
func resolveFilter(flags flag.Config, cfg config.Config) jql.Filter {
	switch {
	case flags.Label != "":
		return jql.Label(flags.Label)
	case len(flags.Labels) > 0:
		return jql.Labels{Values: flags.Labels, MatchAll: flags.MatchAll}
	case flags.Assignee != "":
		return jql.Assignee(flags.Assignee)
	case cfg.DefaultAssignee != "":
		return jql.Assignee(cfg.DefaultAssignee)
	default:
		return jql.Assignee(flag.DefaultAssignee)
	}
}

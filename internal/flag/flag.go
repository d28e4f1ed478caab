package flag

import (
	"io"

	"github.com/containeroo/tinyflags"
	"github.com/gi8lino/jirafind/internal/logging"
	"github.com/gi8lino/jirafind/internal/utils"
)

// DefaultAssignee is used when no filter flag and no configured default is given.
const DefaultAssignee = "gi8lino"

// Config holds all application flags after parsing.
type Config struct {
	Assignee string   // Filter by assignee username
	Label    string   // Filter by a single label
	Labels   []string // Filter by several labels
	MatchAll bool     // Require all labels (only with Labels)

	MaxResults int      // Page size cap (0 = use default)
	Fields     []string // Issue fields to request (empty = use default)

	BaseURL       string // Tracker base URL
	ConfigFile    string // Optional YAML config file
	SkipTLSVerify bool   // Disable TLS certificate verification

	Debug     bool              // Enables debug logging
	LogFormat logging.LogFormat // Log output format (text or json)
}

// ParseArgs parses CLI arguments into Config, handling version/help flags.
func ParseArgs(version string, args []string, out io.Writer, getEnv func(string) string) (Config, error) {
	var cfg Config
	tf := tinyflags.NewFlagSet("jirafind", tinyflags.ContinueOnError)
	tf.Version(version)
	tf.SetGetEnvFn(getEnv)
	tf.EnvPrefix("JIRAFIND")
	tf.SetOutput(out)

	// Filters
	tf.StringVar(&cfg.Assignee, "assignee", "", "Filter issues by assignee username").
		Placeholder("USERNAME").
		Value()
	tf.StringVar(&cfg.Label, "label", "", "Filter issues by a single label").
		Placeholder("LABEL").
		Value()
	labels := tf.String("labels", "", "Filter issues by a comma-separated list of labels").
		Placeholder("L1,L2,...").
		Value()
	tf.BoolVar(&cfg.MatchAll, "match-all", false, "Require all labels to match (only with --labels)").Value()

	// Query shape
	tf.IntVar(&cfg.MaxResults, "max-results", 0, "Maximum number of issues to fetch").
		Placeholder("N").
		Value()
	fields := tf.String("fields", "", "Comma-separated list of issue fields to request").
		Placeholder("F1,F2,...").
		Value()

	// Connection
	tf.StringVar(&cfg.BaseURL, "base-url", "", "Tracker base URL (e.g. https://jira.example.com)").
		Placeholder("URL").
		Value()
	tf.StringVar(&cfg.ConfigFile, "config", "", "Path to optional config file").
		Placeholder("PATH").
		Value()
	tf.BoolVar(&cfg.SkipTLSVerify, "skip-tls-verify", false, "Skip TLS certificate verification").Value()

	// Logging
	tf.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging").Value()
	logFormat := tf.String("log-format", "text", "Log format").Choices("text", "json").Short("l").Value()

	// Parse
	if err := tf.Parse(args); err != nil {
		return Config{}, err
	}

	// Post-parse
	cfg.LogFormat = logging.LogFormat(*logFormat)
	cfg.Labels = utils.SplitCSV(*labels)
	cfg.Fields = utils.SplitCSV(*fields)

	return cfg, nil
}

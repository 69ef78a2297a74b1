package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"extension-resolver/internal/policy"
	"extension-resolver/internal/resolve"
)

// configEnv names a config file used when --config is not given.
const configEnv = "EXTENSION_RESOLVER_CONFIG"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	config  string
	exts    []string
	outExt  string
	keep    []string
	extMap  map[string]string
	verbose bool
}

func newRootCmd() *cobra.Command {
	return newRoot(&globalFlags{})
}

func newRoot(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extension-resolver",
		Short: "Rewrite relative import specifiers to the extensions a build emits",
		Long: `extension-resolver resolves extensionless or source-language relative
module specifiers ("./util", "./components") against the file system and
rewrites them to the extension produced by a build ("./util.js",
"./components/index.js"). Package specifiers are never touched.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(g.verbose)

			return loadDotEnv()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&g.config, "config", "", "YAML config file (default: $"+configEnv+")")
	flags.StringSliceVar(&g.exts, "ext", nil, "candidate extensions in probe order; replaces the configured list")
	flags.StringVar(&g.outExt, "out-ext", "", "extension written for matched extensions that are not kept")
	flags.StringSliceVar(&g.keep, "keep", nil, "extensions written verbatim; replaces the configured list")
	flags.StringToStringVar(&g.extMap, "map", nil, "extension rewrite map (e.g. .ts=.js); selects the map style")
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "log every decision")

	cmd.AddCommand(
		newRewriteCmd(g),
		newResolveCmd(g),
		newBundleCmd(g),
		newDefaultsCmd(g),
	)

	return cmd
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadDotEnv loads .env from the working directory when present.
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// policy layers flags over the config file over the defaults.
func (g *globalFlags) policy(cmd *cobra.Command) (policy.Policy, error) {
	var fileOpts *policy.Options

	path := g.config
	if path == "" {
		path = os.Getenv(configEnv)
	}

	if path != "" {
		opts, err := policy.LoadFile(path)
		if err != nil {
			return policy.Policy{}, err
		}

		fileOpts = opts
	}

	flags := cmd.Flags()
	flagOpts := &policy.Options{}

	if flags.Changed("ext") {
		flagOpts.CandidateExtensions = append(policy.ExtensionList{}, g.exts...)
	}

	if flags.Changed("out-ext") {
		flagOpts.OutputExtension = policy.String(g.outExt)
	}

	if flags.Changed("keep") {
		flagOpts.ExtensionsToKeep = append(policy.ExtensionList{}, g.keep...)
	}

	if flags.Changed("map") {
		flagOpts.ExtensionMap = g.extMap
	}

	return policy.Normalize(policy.Merge(fileOpts, flagOpts)), nil
}

// resolver builds the resolver for the effective policy.
func (g *globalFlags) resolver(cmd *cobra.Command) (*resolve.Resolver, error) {
	p, err := g.policy(cmd)
	if err != nil {
		return nil, err
	}

	return resolve.New(p, resolve.OSFileSystem{}), nil
}

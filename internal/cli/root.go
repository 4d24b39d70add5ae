package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // set with -ldflags at build time
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the vdoc command line and returns the error of the command
// that failed, if any.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// rootOpts holds the persistent flags.
type rootOpts struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	var opts rootOpts
	root := &cobra.Command{
		Use:   appName,
		Short: "vdoc converts and edits vector drawings",
		Long: `vdoc reads layered vector drawings from TOML scene files, lets you
select or delete objects by predicate and writes the result as SVG, as a
textual outline or as a GraphViz graph.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("%s {{.Version}}\ncommit: %s\nbuilt: %s\n", appName, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfig, "configuration file")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newOutlineCmd())
	root.AddCommand(newSelectCmd())
	root.AddCommand(newDeleteCmd())
	return root
}

// setup loads the configuration and attaches it to the command's context,
// together with a logger.
func (opts *rootOpts) setup(cmd *cobra.Command) error {
	explicit := cmd.Flags().Changed("config")
	conf, err := loadConfig(opts.configPath, explicit)
	if err != nil {
		return err
	}
	level, err := conf.level(charmlog.InfoLevel)
	if err != nil {
		return fmt.Errorf("config %s: %w", opts.configPath, err)
	}
	if opts.verbose {
		level = charmlog.DebugLevel
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	ctx = withLogger(ctx, logger)
	ctx = withConfig(ctx, conf)
	cmd.SetContext(ctx)
	return nil
}

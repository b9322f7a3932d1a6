package main

import (
	"github.com/spf13/cobra"

	"github.com/deafcat/adaptation/internal/app"
	"github.com/deafcat/adaptation/internal/logging"
	"github.com/deafcat/adaptation/internal/ui"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	prefsPath  string
	logPath    string
	debug      bool
}

func (g *globalFlags) options() app.Options {
	return app.Options{
		ConfigPath: g.configPath,
		PrefsPath:  g.prefsPath,
		Debug:      g.debug,
		Version:    version,
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	var tab string

	root := &cobra.Command{
		Use:           "deafcat",
		Short:         "DeafCat adaptation production dashboard",
		Long:          "Browse the character bible and episode production status of the DeafCat adaptation.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			initial, err := ui.ParseTab(tab)
			if err != nil {
				return err
			}
			opts := flags.options()
			opts.LogPath = flags.logPath
			opts.Tab = initial
			return app.Run(cmd.Context(), opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/deafcat/config.toml)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/deafcat/prefs.toml)")
	pf.BoolVar(&flags.debug, "debug", false, "log at debug level")
	root.Flags().StringVar(&flags.logPath, "log-file", logging.DefaultPath(), "dashboard log file")
	root.Flags().StringVar(&tab, "tab", "characters", "initial tab: characters or episodes")

	root.AddCommand(
		newCharactersCmd(flags),
		newEpisodesCmd(flags),
		newVersionCmd(),
	)
	return root
}

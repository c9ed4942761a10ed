package cmd

import (
	"fmt"
	"os"

	"github.com/carlmjohnson/versioninfo"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bruni-arendelle/simple-virtual-list/internal"
	"github.com/bruni-arendelle/simple-virtual-list/internal/constants"
	"github.com/bruni-arendelle/simple-virtual-list/internal/keymap"
)

var (
	// Version is public so users can optionally specify or override the version
	// at build time by passing in ldflags, e.g.
	//   go build -ldflags "-X github.com/bruni-arendelle/simple-virtual-list/cmd.Version=vX.Y.Z"
	Version = ""
)

type arg struct {
	cliShort, cfgFileEnvVar, description, defaultString string
	isBool, isInt, defaultIfBool                        bool
	defaultIfInt                                        int
}

var (
	rootNameToArg = map[string]arg{
		"count": {
			cliShort:      "c",
			cfgFileEnvVar: "count",
			description:   `Number of rows in the demo dataset`,
			isInt:         true,
			defaultIfInt:  constants.DefaultItemCount,
		},
		"help": {
			description: `Print usage`,
		},
		"overscan": {
			cliShort:      "o",
			cfgFileEnvVar: "overscan",
			description:   `Extra rows rendered on each side of the visible span. Default is one viewport worth`,
			isInt:         true,
			defaultIfInt:  -1,
		},
		"row-lines": {
			cliShort:      "",
			cfgFileEnvVar: "row-lines",
			description:   `Terminal lines per row. Default 1`,
			isInt:         true,
			defaultIfInt:  1,
		},
	}

	description = fmt.Sprintf(`vlist %s

vlist is a windowed list demo: it scrolls a logically large dataset while only
ever materializing the rows near the viewport`,
		getVersion(),
	)

	rootCmd = &cobra.Command{
		Use:   "vlist",
		Short: "vlist: virtualized list demo",
		Long:  description,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, rootNameToArg)
		},
		Run:     mainEntrypoint,
		Version: getVersion(),
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cliLong := "help"
	rootCmd.PersistentFlags().BoolP(cliLong, rootNameToArg[cliLong].cliShort, rootNameToArg[cliLong].defaultIfBool, rootNameToArg[cliLong].description)

	for _, cliLong = range []string{
		"count",
		"overscan",
		"row-lines",
	} {
		c := rootNameToArg[cliLong]
		if c.isBool {
			rootCmd.PersistentFlags().BoolP(cliLong, c.cliShort, c.defaultIfBool, c.description)
		} else if c.isInt {
			rootCmd.PersistentFlags().IntP(cliLong, c.cliShort, c.defaultIfInt, c.description)
		} else {
			rootCmd.PersistentFlags().StringP(cliLong, c.cliShort, c.defaultString, c.description)
		}
		_ = viper.BindPFlag(cliLong, rootCmd.PersistentFlags().Lookup(c.cfgFileEnvVar))
	}
	rootCmd.SetVersionTemplate(`{{printf "vlist %s\n" .Version}}`)
	rootCmd.Flags().BoolP("version", "v", false, "Show vlist version")
}

func initConfig(cmd *cobra.Command, nameToArg map[string]arg) error {
	// bind viper to env vars
	viper.AutomaticEnv()

	bindFlags(cmd, nameToArg)
	return nil
}

func bindFlags(cmd *cobra.Command, nameToArg map[string]arg) {
	v := viper.GetViper()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		cliLong := f.Name
		viperName := nameToArg[cliLong].cfgFileEnvVar

		// Apply the viper config value to the flag when the flag is not manually specified
		// and viper has a value from the config file or env var
		if !f.Changed && v.IsSet(viperName) {
			val := v.Get(viperName)
			err := cmd.Flags().Set(cliLong, fmt.Sprintf("%v", val))
			if err != nil {
				fmt.Printf("error setting flag %s: %v\n", cliLong, err)
				os.Exit(1)
			}
		}
	})
}

func mainEntrypoint(cmd *cobra.Command, _ []string) {
	initialModel, options := setup(cmd)
	program := tea.NewProgram(initialModel, options...)

	if _, err := program.Run(); err != nil {
		fmt.Printf("error on vlist startup: %v", err)
		os.Exit(1)
	}
}

func getVersion() string {
	if Version != "" {
		return Version
	}
	return versioninfo.Short()
}

func getItemCount(cmd *cobra.Command) int {
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		fmt.Printf("error parsing count: %v\n", err)
		os.Exit(1)
	}
	if count < 0 {
		fmt.Println("error: count must be non-negative")
		os.Exit(1)
	}
	return count
}

func getOverscan(cmd *cobra.Command) int {
	// -1 indicates the default of one viewport worth of rows
	if !cmd.Flags().Lookup("overscan").Changed {
		return -1
	}
	overscan, err := cmd.Flags().GetInt("overscan")
	if err != nil {
		fmt.Printf("error parsing overscan: %v\n", err)
		os.Exit(1)
	}
	if overscan < 0 {
		fmt.Println("error: overscan must be non-negative")
		os.Exit(1)
	}
	return overscan
}

func getRowLines(cmd *cobra.Command) int {
	rowLines, err := cmd.Flags().GetInt("row-lines")
	if err != nil {
		fmt.Printf("error parsing row-lines: %v\n", err)
		os.Exit(1)
	}
	if rowLines < 1 {
		fmt.Println("error: row-lines must be positive")
		os.Exit(1)
	}
	return rowLines
}

func getConfig(cmd *cobra.Command) internal.Config {
	return internal.Config{
		KeyMap:    keymap.DefaultKeyMap(),
		ItemCount: getItemCount(cmd),
		RowLines:  getRowLines(cmd),
		Overscan:  getOverscan(cmd),
		Version:   getVersion(),
	}
}

func setup(cmd *cobra.Command) (internal.Model, []tea.ProgramOption) {
	initialModel := internal.InitialModel(getConfig(cmd))
	return initialModel, []tea.ProgramOption{tea.WithAltScreen()}
}

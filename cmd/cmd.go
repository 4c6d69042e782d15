package cmd

import (
	tea "charm.land/bubbletea/v2"
	"fmt"
	"github.com/carlmjohnson/versioninfo"
	"github.com/robinovitch61/vl/internal"
	"github.com/robinovitch61/vl/internal/constants"
	"github.com/robinovitch61/vl/internal/keymap"
	"github.com/robinovitch61/vl/internal/viewport"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"os"
	"strings"
	"time"
)

var (
	// Version is public so users can optionally specify or override the version
	// at build time by passing in ldflags, e.g.
	//   go build -ldflags "-X github.com/robinovitch61/vl/cmd.Version=vX.Y.Z"
	Version = ""
)

type arg struct {
	cliShort, cfgFileEnvVar, description, defaultString string
	isBool, isInt, defaultIfBool                        bool
	defaultIfInt                                        int
}

var (
	rootNameToArg = map[string]arg{
		"batch-size": {
			cliShort:      "b",
			cfgFileEnvVar: "batch-size",
			description:   `Number of items rendered at once. Should exceed the number of items visible at once`,
			isInt:         true,
			defaultIfInt:  constants.DefaultBatchSize,
		},
		"config": {
			cliShort:      "c",
			cfgFileEnvVar: "config",
			description:   `Config file path. Defaults to $HOME/.config/vl/vl.yaml if present`,
		},
		"fps": {
			cfgFileEnvVar: "fps",
			description:   `Frames per second. Scrolling recomputes the visible items at most once per frame`,
			isInt:         true,
			defaultIfInt:  int(time.Second / constants.FrameInterval),
		},
		"help": {
			description: `Print usage`,
		},
		"item-height": {
			cfgFileEnvVar: "item-height",
			description:   `Height of each item in rows. With --measure, the estimate for items not yet rendered`,
			isInt:         true,
			defaultIfInt:  constants.DefaultItemHeight,
		},
		"items": {
			cliShort:      "n",
			cfgFileEnvVar: "items",
			description:   `Number of items`,
			isInt:         true,
			defaultIfInt:  200,
		},
		"measure": {
			cliShort:      "m",
			cfgFileEnvVar: "measure",
			description:   `If present, measure every rendered item instead of assuming they are all --item-height rows tall`,
			isBool:        true,
		},
		"pane-height": {
			cfgFileEnvVar: "pane-height",
			description:   `Height of the pane the list scrolls in. Defaults to the terminal height`,
			isInt:         true,
		},
		"title": {
			cliShort:      "t",
			cfgFileEnvVar: "title",
			description:   `Initial list title. Default none, a bare list with no header or footer`,
		},
		"viewport": {
			cliShort:      "",
			cfgFileEnvVar: "viewport",
			description:   `Where the list scrolls: auto, window or pane. Default auto`,
			defaultString: "auto",
		},
	}

	description = fmt.Sprintf(`vl %s
Leo Robinovitch <leorobinovitch@gmail.com>

vl is a virtualized list for terminal UIs. This demo scrolls through a list of
synthetic items, rendering only the few around the scroll position

Home page: https://github.com/robinovitch61/vl`,
		getVersion(),
	)

	rootCmd = &cobra.Command{
		Use:   "vl",
		Short: "vl: virtualized list demo",
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

// init is called once when the cmd package is loaded
// https://golangdocs.com/init-function-in-golang
func init() {
	cliLong := "help"
	rootCmd.PersistentFlags().BoolP(cliLong, rootNameToArg[cliLong].cliShort, rootNameToArg[cliLong].defaultIfBool, rootNameToArg[cliLong].description)

	for _, cliLong = range []string{
		"batch-size",
		"config",
		"fps",
		"item-height",
		"items",
		"measure",
		"pane-height",
		"title",
		"viewport",
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
	rootCmd.SetVersionTemplate(`{{printf "vl %s\n" .Version}}`)
	rootCmd.Flags().BoolP("version", "v", false, "Show vl version")
}

func initConfig(cmd *cobra.Command, nameToArg map[string]arg) error {
	v := viper.GetViper()

	// env vars look like VL_ITEM_HEIGHT
	v.SetEnvPrefix("vl")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, v.GetString("config")); err != nil {
		return err
	}

	bindFlags(cmd, nameToArg)
	return nil
}

// readConfigFile reads the config file at path, or the default config file if it exists
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("vl")
	v.AddConfigPath(fmt.Sprintf("%s/.config/vl", homeDir()))
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

func bindFlags(cmd *cobra.Command, nameToArg map[string]arg) {
	v := viper.GetViper()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		cliLong := f.Name
		viperName := f.Name
		if a, ok := nameToArg[cliLong]; ok && a.cfgFileEnvVar != "" {
			viperName = a.cfgFileEnvVar
		}

		// apply the viper config value to the flag when the flag is not manually specified
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
	config, err := getConfig(cmd)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	program := tea.NewProgram(internal.InitialModel(config))

	if _, err := program.Run(); err != nil {
		fmt.Printf("error on vl startup: %v", err)
		os.Exit(1)
	}
}

func getVersion() string {
	if Version != "" {
		return Version
	}
	return versioninfo.Short()
}

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	return os.Getenv("USERPROFILE") // Windows
}

// getNonNegativeInt returns the value of an int flag, which must not be negative
func getNonNegativeInt(cmd *cobra.Command, name string) (int, error) {
	n, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be non-negative, got %d", name, n)
	}
	return n, nil
}

// getPositiveInt returns the value of an int flag, which must be positive
func getPositiveInt(cmd *cobra.Command, name string) (int, error) {
	n, err := getNonNegativeInt(cmd, name)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return n, nil
}

func getFrameInterval(cmd *cobra.Command) (time.Duration, error) {
	fps, err := getPositiveInt(cmd, "fps")
	if err != nil {
		return 0, err
	}
	return time.Second / time.Duration(fps), nil
}

func getViewport(cmd *cobra.Command) (viewport.Kind, error) {
	return viewport.ParseKind(cmd.Flags().Lookup("viewport").Value.String())
}

func getMeasure(cmd *cobra.Command) bool {
	return cmd.Flags().Lookup("measure").Value.String() == "true"
}

func getTitle(cmd *cobra.Command) string {
	return cmd.Flags().Lookup("title").Value.String()
}

func getConfig(cmd *cobra.Command) (internal.Config, error) {
	items, err := getNonNegativeInt(cmd, "items")
	if err != nil {
		return internal.Config{}, err
	}
	itemHeight, err := getPositiveInt(cmd, "item-height")
	if err != nil {
		return internal.Config{}, err
	}
	batchSize, err := getPositiveInt(cmd, "batch-size")
	if err != nil {
		return internal.Config{}, err
	}
	paneHeight, err := getNonNegativeInt(cmd, "pane-height")
	if err != nil {
		return internal.Config{}, err
	}
	frameInterval, err := getFrameInterval(cmd)
	if err != nil {
		return internal.Config{}, err
	}
	kind, err := getViewport(cmd)
	if err != nil {
		return internal.Config{}, err
	}

	return internal.Config{
		KeyMap:        keymap.DefaultKeyMap(),
		Items:         items,
		ItemHeight:    itemHeight,
		BatchSize:     batchSize,
		Viewport:      kind,
		PaneHeight:    paneHeight,
		Measure:       getMeasure(cmd),
		FrameInterval: frameInterval,
		Title:         getTitle(cmd),
		Version:       getVersion(),
	}, nil
}

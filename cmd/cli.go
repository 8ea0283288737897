package main

import (
	"github.com/nimatrueway/basenc/internal"
	"github.com/nimatrueway/basenc/internal/config"
	"github.com/nimatrueway/basenc/internal/view"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ztrue/tracerr"
	"io"
	"os"
)

var RootCmd = &cobra.Command{
	Use:   "basenc",
	Short: "Base16 and Base64 encode and decode tools",
	Long: `basenc encodes or decodes a string argument or the content of a file with Base16 (hex, optionally with
a custom alphabet) or Base64. Results are printed as one line, or written to a file with --output.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

type rootFlags struct {
	Config  string
	Verbose bool
	Decode  bool
	File    string
	Output  string
	Key     string
	Lenient bool
}

var RootFlags rootFlags

var Base16Cmd = &cobra.Command{
	Use:   "base16 [flags] [INPUT]",
	Short: "Base16 encode and decode",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, config.Base16, args)
	},
}

var Base64Cmd = &cobra.Command{
	Use:   "base64 [flags] [INPUT]",
	Short: "Base64 encode and decode",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, config.Base64, args)
	},
}

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as toml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configure("")
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), cfg.SaveData())
		return err
	},
}

func init() {
	// shared flags
	for _, fs := range []*pflag.FlagSet{Base16Cmd.Flags(), Base64Cmd.Flags(), ConfigCmd.Flags()} {
		fs.StringVarP(&RootFlags.Config, "config", "c", "", "config file")
		fs.BoolVarP(&RootFlags.Verbose, "verbose", "v", false, "log debug messages")
	}
	for _, fs := range []*pflag.FlagSet{Base16Cmd.Flags(), Base64Cmd.Flags()} {
		fs.BoolVarP(&RootFlags.Decode, "decode", "d", false, "decode input, default is to encode")
		fs.StringVarP(&RootFlags.File, "file", "f", "", "input file path")
		fs.StringVarP(&RootFlags.Output, "output", "o", "", "output file path")
	}
	Base16Cmd.Flags().StringVarP(&RootFlags.Key, "key", "k", "", "encode/decode alphabet, used when at least 16 characters long")
	Base16Cmd.Flags().BoolVar(&RootFlags.Lenient, "lenient", false, "decode unknown characters as 0 and drop a trailing odd character")

	RootCmd.AddCommand(Base16Cmd)
	RootCmd.AddCommand(Base64Cmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.Version = config.Version
}

func run(cmd *cobra.Command, codecType config.CodecType, args []string) error {
	config.Mode = string(codecType)
	cfg, err := configure(codecType)
	if err != nil {
		return err
	}

	opts := internal.Options{
		Codec:   codecType,
		Decode:  RootFlags.Decode,
		File:    optional(RootFlags.File),
		Output:  optional(RootFlags.Output),
		Lenient: RootFlags.Lenient,
	}
	if cmd.Flags().Changed("key") {
		opts.Key = mo.Some(RootFlags.Key)
	}
	if len(args) > 0 {
		opts.Input = mo.Some(args[0])
	}
	if opts.File.IsAbsent() && opts.Input.IsAbsent() {
		return tracerr.New("no input given, pass a string argument or --file")
	}

	return internal.Run(cfg, opts, cmd.OutOrStdout())
}

func configure(mode config.CodecType) (*config.Struct, error) {
	if mode != "" {
		logrus.Debugf("running %s", mode)
	}
	cfg := &config.Config
	if err := cfg.Load(RootFlags.Config); err != nil {
		return nil, err
	}
	if RootFlags.Verbose && cfg.Log.Level < logrus.DebugLevel {
		cfg.Log.Level = logrus.DebugLevel
	}
	if err := view.Init(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func optional(value string) mo.Option[string] {
	if value == "" {
		return mo.None[string]()
	}
	return mo.Some(value)
}

func main() {
	if cmd, err := RootCmd.ExecuteC(); err != nil {
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			view.AppendRaw(tracerr.SprintSource(err))
		}
		logrus.Error(err.Error())
		cmd.SetOut(os.Stdout)
		_ = cmd.Usage()
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/quintus/internal"
)

// flagKeys maps every configurable flag to its viper key
var flagKeys = map[string]string{
	"output":        "output.directory",
	"csv":           "output.csv",
	"sqlite":        "output.sqlite",
	"urn":           "source.urn",
	"cts-endpoint":  "source.endpoint",
	"tei-file":      "source.tei_file",
	"cache-dir":     "source.cache_dir",
	"timeout":       "source.timeout",
	"dices-url":     "speeches.dices_url",
	"author":        "speeches.author",
	"speeches-file": "speeches.file",
	"rules":         "analysis.rules",
	"workers":       "analysis.workers",
	"cache-size":    "analysis.cache_size",
	"log-level":     "log.level",
	"log-format":    "log.format",
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quintus [word]",
		Short: "Greek verse sound tally generator",
		Long: `quintus downloads the Posthomerica of Quintus Smyrnaeus and counts
the sounds of every word so that alliteration and assonance can be
studied line by line, separately for narration and speeches.

Examples:
  quintus                              # Fetch text and speeches, write data/sounds.csv
  quintus --tei-file qs.xml \
          --speeches-file speeches.txt # Work offline from local files
  quintus --sqlite sounds.db           # Also store the run in SQLite
  quintus ἀνδράσι                      # Show the sound profile of one word
  quintus --list-sounds                # Print the replacement rules`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.quintus.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")

	// Output flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory")
	cmd.Flags().StringVar(&flags.CSVFile, "csv", flags.CSVFile, "CSV file name inside the output directory")
	cmd.Flags().StringVar(&flags.SQLiteFile, "sqlite", "", "SQLite file name inside the output directory (empty disables)")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the output directory and exit")
	cmd.Flags().BoolVar(&flags.ListSounds, "list-sounds", false, "List the sound replacement rules and exit")

	// Text source flags
	cmd.Flags().StringVar(&flags.URN, "urn", flags.URN, "CTS URN of the text")
	cmd.Flags().StringVar(&flags.CTSEndpoint, "cts-endpoint", flags.CTSEndpoint, "CTS endpoint template, {urn} is replaced")
	cmd.Flags().StringVar(&flags.TEIFile, "tei-file", "", "Read the text from a local TEI XML file instead of CTS")
	cmd.Flags().StringVar(&flags.CacheDir, "cache-dir", "", "Directory for caching downloaded text")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout for each remote request")

	// Speech flags
	cmd.Flags().StringVar(&flags.DICESURL, "dices-url", flags.DICESURL, "DICES API base URL")
	cmd.Flags().StringVar(&flags.Author, "author", flags.Author, "Author whose speeches are requested from DICES")
	cmd.Flags().StringVar(&flags.SpeechesFile, "speeches-file", "", "Read speech ranges from a file instead of DICES")

	// Analysis flags
	cmd.Flags().StringVar(&flags.RulesFile, "rules", "", "YAML file with custom replacement rules")
	cmd.Flags().IntVar(&flags.Workers, "workers", flags.Workers, "Number of concurrent word profilers")
	cmd.Flags().IntVar(&flags.CacheSize, "cache-size", flags.CacheSize, "Number of memoized word profiles (0 disables)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			flag = cmd.PersistentFlags().Lookup(name)
		}
		viper.BindPFlag(key, flag)
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".quintus" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".quintus")
	}

	// Environment variables, e.g. QUINTUS_SOURCE_URN
	viper.SetEnvPrefix("QUINTUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ResolveFlags copies the effective configuration back into flags so that
// a flag set on the command line wins over the environment, which wins
// over the config file, which wins over the default.
func ResolveFlags(flags *Flags) {
	flags.OutputDir = viper.GetString("output.directory")
	flags.CSVFile = viper.GetString("output.csv")
	flags.SQLiteFile = viper.GetString("output.sqlite")
	flags.URN = viper.GetString("source.urn")
	flags.CTSEndpoint = viper.GetString("source.endpoint")
	flags.TEIFile = viper.GetString("source.tei_file")
	flags.CacheDir = viper.GetString("source.cache_dir")
	flags.Timeout = viper.GetDuration("source.timeout")
	flags.DICESURL = viper.GetString("speeches.dices_url")
	flags.Author = viper.GetString("speeches.author")
	flags.SpeechesFile = viper.GetString("speeches.file")
	flags.RulesFile = viper.GetString("analysis.rules")
	flags.Workers = viper.GetInt("analysis.workers")
	flags.CacheSize = viper.GetInt("analysis.cache_size")
	flags.LogLevel = viper.GetString("log.level")
	flags.LogFormat = viper.GetString("log.format")
}

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	Credential string `json:"credential" yaml:"credential"` // Credentials to use for GCS
	Root       string `json:"root" yaml:"root"`             // Archive root
	LocalRoot  string `json:"localroot" yaml:"localroot"`   // Root of extracted contents
	Download   bool   `json:"download" yaml:"download"`     // Forward missing archives from their origin
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// setCorpusParams fills the flags that were not given with configured values
func (c *CLIConfig) setCorpusParams(flags *flagsT) {
	if flags.corpus.Root == "" {
		flags.corpus.Root = c.Root
	}
	if flags.corpus.LocalRoot == "" {
		flags.corpus.LocalRoot = c.LocalRoot
	}
	if flags.root.credFile == "" {
		flags.root.credFile = c.Credential
	}
	if !flags.corpus.Download {
		flags.corpus.Download = c.Download
	}
}

// MarshalConfig renders the configuration as yaml
func (c CLIConfig) MarshalConfig() ([]byte, error) {
	return yaml.Marshal(c)
}

func configFileLocation(expand bool) string {
	if file := os.Getenv(envConfigLocation); file != "" {
		return file
	}
	if !expand {
		return filepath.Join("$HOME", ".corpusy", "corpusy.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".corpusy", "corpusy.yaml")
	}
	return filepath.Join(home, ".corpusy", "corpusy.yaml")
}

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage a config",
	Long: `Commands to manage corpusy CLI config.

Configuration for corpusy is the common set of flags that do not change across runs,
such as the archive root or the credential file.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envConfigLocation = "CORPUSY_CONFIG"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "corpusy",
	Short: "corpusy gets speech corpora ready to use",
	Long: `corpusy gets speech corpora ready to use.

A corpus is designated by a preset name (e.g. JVS), optionally with a variant (VCTK==ver0_92).
Several corpora may be combined with "&" (JVS&VCTK).

Archives live under an archive root (a local directory, gs://bucket, s3://bucket or an http(s) URL).
When an archive is missing there and downloads are enabled, it is first forwarded from its origin.
Contents are extracted locally, once.
`,
	SilenceUsage: true,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	addLogLevel(rootCmd)
	addCredentialFile(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("download", false)
	if os.Getenv(envConfigLocation) != "" {
		viper.SetConfigFile(os.Getenv(envConfigLocation))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.corpusy")
		viper.AddConfigPath("/etc/corpusy")
		viper.SetConfigName("corpusy")
	}

	viper.SetEnvPrefix("corpusy")
	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		infoLogger.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		wrapFatalln("reading config", err)
		return
	}
	config.setCorpusParams(&corpusyFlags)
}

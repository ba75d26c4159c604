package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configSet = &cobra.Command{
	Aliases: []string{"create"},
	Use:     "set",
	Short:   "Create a local config file",
	Long: `Creates a local config file, holding flags that do not change, like the archive root.

	By default, this configuration file will be placed in ` + configFileLocation(false) + `.

	Use the ` + envConfigLocation + ` environment variable to change this default target.
	`,
	Example: `# Keep archives in a bucket, and forward them from their origin when missing
% corpusy config set --root gs://speech-corpora --download --credential /home/me/.config/gcloud/application_default_credentials.json
config file created in /home/me/.corpusy/corpusy.yaml

# Generate config in some non-default location
% ` + envConfigLocation + `=~/.config/corpusy/config.yaml corpusy config set --root s3://speech-corpora
config file created in /home/me/.config/corpusy/config.yaml
`,
	Run: func(cmd *cobra.Command, args []string) {
		localConfig := CLIConfig{
			Credential: corpusyFlags.root.credFile,
			Root:       corpusyFlags.corpus.Root,
			LocalRoot:  corpusyFlags.corpus.LocalRoot,
			Download:   corpusyFlags.corpus.Download,
		}

		file := configFileLocation(true)

		if ext := filepath.Ext(file); ext != ".yaml" {
			infoLogger.Printf("warning: the generated config file will contain a yaml document, but the file extension is %q", ext)
		}
		o, err := localConfig.MarshalConfig()
		if err != nil {
			wrapFatalln("could not serialize config to yaml", err)
			return
		}

		err = os.MkdirAll(filepath.Dir(file), 0700)
		if err != nil {
			wrapFatalln("could not create directory to hold config "+filepath.Dir(file), err)
			return
		}

		err = os.WriteFile(file, o, 0600)
		if err != nil {
			wrapFatalln("error writing config file "+file, err)
			return
		}

		infoLogger.Printf("config file created in %s", file)
	},
}

func init() {
	addCorpusRootFlag(configSet)
	addLocalRootFlag(configSet)
	addDownloadFlag(configSet)
	configCmd.AddCommand(configSet)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "msgctl",
	Short: "Msgctl is a command line tool for interacting with the msghub messaging server",
	Long: `msgctl is the command-line interface for the msghub unified messaging server.

Msghub exposes one HTTP API for sending and browsing SMS, MMS and email
messages. Outbound sends are relayed to the configured provider; every
message, inbound or outbound, is grouped into a conversation keyed by its
pair of participant addresses.

Common workflows:

  Send an SMS:
    msgctl send --type sms --from "+12016661234" --to "+18045551234" --body "Hello!"

  Send an email with attachments:
    msgctl send --type email --from "user@usehatchapp.com" --to "contact@gmail.com" \
      --body "Hello!" --attachment "https://example.com/image.jpg"

  List conversations:
    msgctl conversations

  List the messages of one conversation:
    msgctl messages <conversation-id>

Configuration:
  Set the API endpoint via environment variable or a config file:
    MSGHUB_URL    API endpoint (default: http://localhost:8080)`,
}

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".msgctl"
		viper.AddConfigPath(home)
		viper.SetConfigName(".msgctl")
		viper.SetConfigType("yaml")
	}

	// Read environment variables that match "MSGHUB_VARNAME"
	viper.SetEnvPrefix("MSGHUB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.msgctl.yaml)")

	rootCmd.PersistentFlags().String("url", "http://localhost:8080", "Msghub server URL")
	viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))
}

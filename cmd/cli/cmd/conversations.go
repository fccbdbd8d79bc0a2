package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var conversationsCmd = &cobra.Command{
	Use:   "conversations",
	Short: "List all conversations",
	Long:  `List every conversation with its participants and messages, ordered by conversation id.`,
	Run: func(cmd *cobra.Command, args []string) {
		url := viper.GetString("url")

		client := NewMessageClient(url)
		conversations, err := client.ListConversations()
		if err != nil {
			if apiErr, ok := err.(*APIError); ok {
				cmd.Printf("Error (%d): %s\n", apiErr.StatusCode, apiErr.Message)
			} else {
				cmd.Printf("Error: %v\n", err)
			}
			return
		}

		if len(conversations) == 0 {
			cmd.Println("No conversations yet")
			return
		}

		for _, conv := range conversations {
			cmd.Printf("#%d  %s <-> %s  (%d messages)\n",
				conv.ID, conv.ParticipantA, conv.ParticipantB, len(conv.Messages))
		}
	},
}

func init() {
	rootCmd.AddCommand(conversationsCmd)
}

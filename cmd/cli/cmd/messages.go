package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var messagesCmd = &cobra.Command{
	Use:   "messages [conversation_id]",
	Short: "List the messages of a conversation",
	Long:  `Retrieve one conversation's messages in chronological order.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conversationID := args[0]

		url := viper.GetString("url")

		client := NewMessageClient(url)
		messages, err := client.GetMessages(conversationID)
		if err != nil {
			if apiErr, ok := err.(*APIError); ok {
				cmd.Printf("Error (%d): %s\n", apiErr.StatusCode, apiErr.Message)
			} else {
				cmd.Printf("Error: %v\n", err)
			}
			return
		}

		if len(messages) == 0 {
			cmd.Println("No messages in this conversation")
			return
		}

		for _, msg := range messages {
			cmd.Printf("[%s] %s  %s -> %s\n  %s\n",
				msg.Timestamp.Format(time.RFC3339), msg.MsgType,
				msg.FromAddress, msg.ToAddress, msg.Body)
		}
	},
}

func init() {
	rootCmd.AddCommand(messagesCmd)
}

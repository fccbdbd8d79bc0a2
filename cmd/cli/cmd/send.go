package cmd

import (
	"encoding/json"
	"time"

	"msghub/pkg/api"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send an outbound message",
	Long: `Send an outbound message through the configured provider.

The message is stored and grouped into its conversation even when the
provider rejects it, so a later retry lands in the same thread.

Example:
  msgctl send --type sms --from "+12016661234" --to "+18045551234" --body "Hello!"
  msgctl send --type email --from "user@usehatchapp.com" --to "contact@gmail.com" \
    --body "<html><b>Hello!</b></html>" --attachment "https://example.com/document.pdf"`,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		msgType, _ := flags.GetString("type")
		from, _ := flags.GetString("from")
		to, _ := flags.GetString("to")
		body, _ := flags.GetString("body")
		attachments, _ := flags.GetStringSlice("attachment")
		timestampStr, _ := flags.GetString("timestamp")

		url := viper.GetString("url")

		if msgType == "" {
			cmd.Println("Error: --type is required (sms, mms or email)")
			return
		}
		if from == "" {
			cmd.Println("Error: --from is required")
			return
		}
		if to == "" {
			cmd.Println("Error: --to is required")
			return
		}

		req := api.SendMessageRequest{
			From: from,
			To:   to,
			Body: body,
		}

		if len(attachments) > 0 {
			raw, err := json.Marshal(attachments)
			if err != nil {
				cmd.Printf("Error: invalid attachments: %v\n", err)
				return
			}
			req.Attachments = raw
		}

		if timestampStr != "" {
			ts, err := time.Parse(time.RFC3339, timestampStr)
			if err != nil {
				cmd.Printf("Error: invalid --timestamp, want RFC3339: %v\n", err)
				return
			}
			req.Timestamp = ts
		}

		client := NewMessageClient(url)
		result, err := client.SendMessage(msgType, req)
		if err != nil {
			if apiErr, ok := err.(*APIError); ok {
				cmd.Printf("Error (%d): %s\n", apiErr.StatusCode, apiErr.Message)
			} else {
				cmd.Printf("Error: %v\n", err)
			}
			return
		}

		cmd.Printf("✓ Message sent!\nID: %d\n", result.MessageID)
	},
}

func init() {
	flags := sendCmd.Flags()
	flags.StringP("type", "t", "", "Message type: sms, mms or email (required)")
	flags.StringP("from", "f", "", "Sender address (required)")
	flags.String("to", "", "Recipient address (required)")
	flags.StringP("body", "b", "", "Message body")
	flags.StringSliceP("attachment", "a", []string{}, "Attachment URL, repeatable")
	flags.String("timestamp", "", "Message timestamp in RFC3339 (default: now)")

	rootCmd.AddCommand(sendCmd)
}

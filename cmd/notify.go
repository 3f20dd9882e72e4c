package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/notify"
)

var notifyNow bool

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Run the morning Telegram reminder",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := newEngine()
		if err != nil {
			return err
		}

		notifier, err := notify.New(eng, cfg)
		if err != nil {
			return err
		}

		if notifyNow {
			return notifier.SendMorningMessage(cmd.Context())
		}
		return notifier.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)

	notifyCmd.Flags().BoolVar(&notifyNow, "now", false, "Send the reminder immediately and exit")
}

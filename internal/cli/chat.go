package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/booking-assistant/internal/bot"
	"github.com/example/booking-assistant/internal/config"
	"github.com/example/booking-assistant/internal/llm"
	"github.com/example/booking-assistant/internal/store"
)

// NewChatCmd returns the command that runs an interactive terminal booking
// session against an in-process store. Useful for trying the collector flow
// without standing up the HTTP server.
func NewChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Book interactively from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			bookings := store.New(store.RealClock{})
			collector := bot.NewCollector(bookings, newGenerator(cfg))
			ctx := cmd.Context()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bot: %s\n", collector.Greeting(ctx))

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Fprint(out, "User: ")
				if !scanner.Scan() {
					return scanner.Err()
				}

				reply, done := collector.Handle(ctx, scanner.Text())
				fmt.Fprintf(out, "Bot: %s\n", reply)
				if done {
					return nil
				}
			}
		},
	}
}

// newGenerator picks the text generator: the chat-completion client when an
// API key is configured, the offline rule-based one otherwise.
func newGenerator(cfg config.Config) bot.Generator {
	if cfg.OpenAIAPIKey != "" {
		return llm.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}
	return llm.RuleBased{}
}

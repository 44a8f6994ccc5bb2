package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/chatbot"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the model from the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newTerminalContainer(cmd)
		if err != nil {
			return err
		}
		return runChat(cmd.Context(), c.ChatbotContainer.Service, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// runChat reads one message per line until EOF or "exit". Model errors are
// printed and the loop continues.
func runChat(ctx context.Context, svc chatbot.Service, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to the EcoQuiz chatbot! Type 'exit' to end the conversation.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "exit") {
			fmt.Fprintln(out, "Chatbot: Goodbye!")
			return nil
		}
		if line == "" {
			continue
		}

		reply, err := svc.Reply(ctx, line)
		if err != nil {
			fmt.Fprintln(out, "An error occurred:", err)
			continue
		}
		fmt.Fprintln(out, "Chatbot:", reply)
	}
}

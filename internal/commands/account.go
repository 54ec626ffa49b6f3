package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	cmd.AddCommand(newAccountAddCommand())

	return cmd
}

func newAccountAddCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "add NUMBER NAME...",
		Short: "Add an account to the book",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid account number %q", args[0])
			}
			name := strings.Join(args[1:], " ")

			if err := runAccountAdd(dir, number, name); err != nil {
				return err
			}
			cmd.Printf("Added account %d %q\n", number, name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")

	return cmd
}

func runAccountAdd(dir string, number int, name string) error {
	cfg, book, err := loadProject(dir)
	if err != nil {
		return err
	}
	if _, err := book.CreateAccount(number, name); err != nil {
		return err
	}
	return saveBook(dir, cfg, book)
}

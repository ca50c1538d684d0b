package command

import (
	commandHandler "hrms/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewSeedHandler)

type Command struct {
	seedCommandHandler *commandHandler.SeedHandler
}

// NewCommand .
func NewCommand(
	seedCommandHandler *commandHandler.SeedHandler,
) *Command {
	return &Command{
		seedCommandHandler: seedCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "seed",
			Short: "insert demo HR and employee accounts (idempotent)",
			RunE: func(cmd *cobra.Command, args []string) error {
				command, cleanup, err := newCmd()
				if err != nil {
					return err
				}
				defer cleanup()

				return command.seedCommandHandler.Seed(cmd, args)
			},
		},
	)
}

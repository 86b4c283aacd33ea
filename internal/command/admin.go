package command

import (
	"github.com/spf13/cobra"

	"github.com/prabhatmusic/riyaaz/internal/sec"
)

func adminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin account utilities",
	}
	cmd.AddCommand(
		adminHashCommand(),
	)
	return cmd
}

func adminHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash",
		Short: "Hash a password",
		Long: "Reads a password from stdin or an interactive prompt and prints its bcrypt\n" +
			"hash, for provisioning admin credentials out of band.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			passwd, err := prompt("password: ", true)
			if err != nil {
				return err
			}
			hash, err := sec.HashPassword(string(passwd))
			if err != nil {
				return err
			}
			cmd.Println(hash)
			return nil
		},
	}
}

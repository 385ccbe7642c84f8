package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piyushdaiya/wallet-classifier/internal/validator"
)

func newChecksumCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "checksum <0x-address>",
		Short: "Print the EIP-55 checksummed form of an Ethereum address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := strings.TrimSpace(args[0])
			if !(&validator.EthereumStrategy{}).IsValidSyntax(address) {
				return fmt.Errorf("%q is not a 0x-prefixed 40 digit hex address", address)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Checksum address: %s\n", validator.ChecksumAddress(address))
			if err := validator.VerifyEIP55(address); err != nil {
				fmt.Fprintf(out, "Input matches:    false (%v)\n", err)
			} else {
				fmt.Fprintf(out, "Input matches:    true\n")
			}
			return nil
		},
	}
}

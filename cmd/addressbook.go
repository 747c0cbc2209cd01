package cmd

import (
	"github.com/spf13/cobra"

	"github.com/starkctl/starkctl/common"
)

var addressBookCmd = &cobra.Command{
	Use:     "addressbook",
	Aliases: []string{"ab"},
	Short:   "Look up and manage named addresses",
}

var addressBookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all known addresses on the current network",
	Run: func(cmd *cobra.Command, args []string) {
		book, err := currentAddrBook()
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		rows := [][]string{}
		for _, entry := range book.Entries() {
			rows = append(rows, []string{entry.Desc, entry.Address})
		}
		appUI.Table([]string{"Name", "Address"}, rows)
	},
}

var addressBookAddCmd = &cobra.Command{
	Use:   "add <address> <description>",
	Short: "Register an address under a searchable description",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		book, err := currentAddrBook()
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		address, err := common.ParseFeltValue(args[0])
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		if err := book.Register(address, args[1]); err != nil {
			appUI.Error("Couldn't store the entry: %s", err)
			return
		}
		appUI.Success("Registered %s as \"%s\"", common.Hex(address), args[1])
	},
}

var addressBookSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search addresses by name, best match first",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		book, err := currentAddrBook()
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		results := book.Search(args[0])
		if len(results) == 0 {
			appUI.Info("No matches for \"%s\"", args[0])
			return
		}
		rows := [][]string{}
		for _, entry := range results {
			rows = append(rows, []string{entry.Desc, entry.Address})
		}
		appUI.Table([]string{"Name", "Address"}, rows)
	},
}

func init() {
	addressBookCmd.AddCommand(addressBookListCmd)
	addressBookCmd.AddCommand(addressBookAddCmd)
	addressBookCmd.AddCommand(addressBookSearchCmd)
	rootCmd.AddCommand(addressBookCmd)
}

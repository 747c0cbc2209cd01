package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/starkctl/starkctl/common"
)

// Local encoding utilities: no network, no state.

var selectorCmd = &cobra.Command{
	Use:   "selector <name>",
	Short: "Print the entry point selector of a function name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(common.FullHex(common.Selector(args[0])))
	},
}

var toShortStringCmd = &cobra.Command{
	Use:   "to-short-string <text>",
	Short: "Encode ASCII text (max 31 chars) as a Cairo short string felt",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := common.ShortStringToFelt(args[0])
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		fmt.Println(common.Hex(f))
	},
}

var parseShortStringCmd = &cobra.Command{
	Use:   "parse-short-string <felt>",
	Short: "Decode a Cairo short string felt back to ASCII text",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := common.ParseFeltValue(args[0])
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		text, err := common.FeltToShortString(f)
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		fmt.Println(text)
	},
}

func init() {
	rootCmd.AddCommand(selectorCmd)
	rootCmd.AddCommand(toShortStringCmd)
	rootCmd.AddCommand(parseShortStringCmd)
}

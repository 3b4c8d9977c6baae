package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/drumtake-cli/drumtake/auth"
	"github.com/drumtake-cli/drumtake/color"
	"github.com/drumtake-cli/drumtake/icon"
	"github.com/drumtake-cli/drumtake/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd serves as the parent command for separation service credentials.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the separation service API key in the system keyring",
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authSetCmd.Flags().StringP("key", "k", "", "The API key to store")
	lo.Must0(authSetCmd.MarkFlagRequired("key"))
}

// authSetCmd stores the separation service API key.
var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the separation service API key in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey := strings.TrimSpace(lo.Must(cmd.Flags().GetString("key")))
		if apiKey == "" {
			handleErr(errors.New("api key must not be empty"))
		}

		handleErr(auth.SetKey(apiKey))
		fmt.Printf("%s api key stored\n", icon.Get(icon.Success))
	},
}

func init() {
	authCmd.AddCommand(authShowCmd)
}

// authShowCmd displays the stored API key in redacted form.
var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the stored separation service API key",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey, err := auth.GetKey()
		handleErr(err)

		// Only the tail is shown so the full key never lands in scrollback.
		redacted := strings.Repeat("*", 8)
		if len(apiKey) > 4 {
			redacted += apiKey[len(apiKey)-4:]
		}

		fmt.Println(style.Fg(color.Green)(redacted))
	},
}

func init() {
	authCmd.AddCommand(authDeleteCmd)
}

// authDeleteCmd removes the stored API key from the system keyring.
var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the separation service API key from the system keyring",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteKey())
		fmt.Printf("%s api key deleted\n", icon.Get(icon.Success))
	},
}

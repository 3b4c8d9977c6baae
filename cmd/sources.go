package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/drumtake-cli/drumtake/color"
	"github.com/drumtake-cli/drumtake/constant"
	"github.com/drumtake-cli/drumtake/filesystem"
	"github.com/drumtake-cli/drumtake/icon"
	"github.com/drumtake-cli/drumtake/internal/scripts"
	"github.com/drumtake-cli/drumtake/provider"
	"github.com/drumtake-cli/drumtake/provider/custom"
	"github.com/drumtake-cli/drumtake/style"
	"github.com/drumtake-cli/drumtake/util"
	"github.com/drumtake-cli/drumtake/where"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd provides a parent command for managing track search sources.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage built-in and custom track search sources",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	sourcesListCmd.Flags().BoolP("custom", "c", false, "Display only user-installed custom Lua sources")
	sourcesListCmd.Flags().BoolP("builtin", "b", false, "Display only pre-compiled built-in sources")

	sourcesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd displays a summary of all registered search sources.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all registered search sources",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		printBuiltin := func() {
			h("Builtin:")
			for _, p := range provider.Builtins() {
				cmd.Println(p.Name)
			}
		}

		printCustom := func() {
			h("Custom:")
			for _, p := range provider.Customs() {
				cmd.Println(p.Name)
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if printHeader {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesRemoveCmd)

	sourcesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Specify the name of the custom source(s) to uninstall")
	lo.Must0(sourcesRemoveCmd.RegisterFlagCompletionFunc("name", completionCustomSources))
}

func completionCustomSources(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	sources, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return lo.FilterMap(sources, func(item os.FileInfo, _ int) (string, bool) {
		name := item.Name()
		if !strings.HasSuffix(name, provider.CustomProviderExtension) {
			return "", false
		}

		return util.FileStem(filepath.Base(name)), true
	}), cobra.ShellCompDirectiveNoFileComp
}

// sourcesRemoveCmd facilitates the uninstallation of custom Lua sources.
var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Permanently uninstall specified custom Lua sources from the system",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Sources(), name+provider.CustomProviderExtension)
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s successfully removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesGenCmd)

	sourcesGenCmd.Flags().StringP("name", "n", "", "The display name of the new search source")
	sourcesGenCmd.Flags().StringP("url", "u", "", "The base URL of the target website")

	lo.Must0(sourcesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesGenCmd.MarkFlagRequired("url"))
}

// sourcesGenCmd scaffolds a boilerplate Lua source script.
var sourcesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Scaffold a new Lua source script using a predefined template",
	Long:  `Generate a boilerplate Lua source script with core functions and metadata.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		s := struct {
			Name           string
			URL            string
			SearchTracksFn string
			Author         string
		}{
			Name:           lo.Must(cmd.Flags().GetString("name")),
			URL:            lo.Must(cmd.Flags().GetString("url")),
			SearchTracksFn: constant.SearchTracksFn,
			Author:         author,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("source").Funcs(funcMap).Parse(constant.SourceTemplate)
		handleErr(err)

		target := filepath.Join(where.Sources(), util.SanitizeFilename(s.Name)+provider.CustomProviderExtension)
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		handleErr(tmpl.Execute(f, s))

		cmd.Println(target)
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesUpdateCmd)

	sourcesUpdateCmd.Flags().StringP("name", "n", "", "The custom source to update")
	sourcesUpdateCmd.Flags().StringP("url", "u", "", "The remote URL to fetch the updated script from")

	lo.Must0(sourcesUpdateCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesUpdateCmd.MarkFlagRequired("url"))

	_ = sourcesUpdateCmd.RegisterFlagCompletionFunc("name", completionCustomSources)
}

// sourcesUpdateCmd refreshes an installed custom source from its remote script.
var sourcesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an installed custom Lua source from a remote URL",
	Run: func(cmd *cobra.Command, args []string) {
		name := lo.Must(cmd.Flags().GetString("name"))
		remote := lo.Must(cmd.Flags().GetString("url"))
		local := filepath.Join(where.Sources(), name+provider.CustomProviderExtension)

		err := scripts.UpdateSource(remote, local)
		if err == scripts.ErrUpToDate {
			fmt.Printf("%s %s is already up to date\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
			return
		}

		handleErr(err)
		fmt.Printf("%s updated %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesRunCmd)
}

// sourcesRunCmd loads a local Lua source file for development and debugging.
var sourcesRunCmd = &cobra.Command{
	Use:     "run [file]",
	Short:   "Load a local Lua source file and verify its contract",
	Long:    `Initialize the Lua 5.1 virtual machine to load a specified script. Useful for source development and debugging.`,
	Args:    cobra.ExactArgs(1),
	Example: "  drumtake sources run ./test.lua",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := custom.LoadSource(args[0])
		handleErr(err)

		fmt.Printf("%s source loads and exposes %s\n", icon.Get(icon.Success), constant.SearchTracksFn)
	},
}

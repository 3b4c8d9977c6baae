package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/drumtake-cli/drumtake/filesystem"
	"github.com/drumtake-cli/drumtake/inline"
	"github.com/drumtake-cli/drumtake/key"
	"github.com/drumtake-cli/drumtake/provider"
	"github.com/drumtake-cli/drumtake/query"
	"github.com/drumtake-cli/drumtake/video"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search query to execute for track discovery")
	inlineCmd.Flags().StringP("track", "t", "", "Criteria for selecting a specific track from the search results")
	inlineCmd.Flags().StringP("match", "m", "", "The value paired with the track selector (exact title or index)")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("download", "d", false, "Download the audio of the selected tracks and print the resulting paths")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.MarkFlagRequired("query"))

	_ = inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Initialize the application for automated execution and data extraction using inline mode.

Track selectors:
  first - first track in the list
  last - last track in the list
  exact - track whose title equals the --match value
  closest - track whose title is nearest to the --match value
  index - track at the --match position (starting from 0)

When using the json flag the track selector can be omitted. That way, it will emit all found tracks.`,
	Run: func(cmd *cobra.Command, args []string) {
		var sources []video.Source

		for _, name := range viper.GetStringSlice(key.DefaultSources) {
			if name == "" {
				handleErr(errors.New("source not set"))
			}

			p, ok := provider.Get(name)
			if !ok {
				handleErr(fmt.Errorf("source not found: %s", name))
			}

			src, err := p.CreateSource()
			handleErr(err)

			sources = append(sources, src)
		}

		searchQuery := lo.Must(cmd.Flags().GetString("query"))

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			writer = f
		} else {
			writer = os.Stdout
		}

		trackFlag := lo.Must(cmd.Flags().GetString("track"))
		trackPicker := mo.None[inline.TrackPicker]()
		if trackFlag != "" {
			fn, err := inline.ParseTrackPicker(trackFlag, lo.Must(cmd.Flags().GetString("match")))
			handleErr(err)
			trackPicker = mo.Some(fn)
		}

		options := &inline.Options{
			Sources:     sources,
			Json:        lo.Must(cmd.Flags().GetBool("json")),
			Query:       searchQuery,
			TrackPicker: trackPicker,
			Out:         writer,
			Download:    lo.Must(cmd.Flags().GetBool("download")),
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema for structured inline mode output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured inline mode output",
	Run: func(cmd *cobra.Command, args []string) {
		schema, err := inline.JsonSchema()
		handleErr(err)

		fmt.Println(string(schema))
	},
}

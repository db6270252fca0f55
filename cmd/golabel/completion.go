package main

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for golabel.

Bash:

  $ source <(golabel completion bash)

Zsh:

  $ golabel completion zsh > "${fpath[1]}/_golabel"

Fish:

  $ golabel completion fish > ~/.config/fish/completions/golabel.fish

Collection and image names are completed from the configured workspace.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		switch args[0] {
		case "bash":
			err = rootCmd.GenBashCompletionV2(os.Stdout, true)
		case "zsh":
			err = rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			err = rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			err = rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		if err != nil {
			fail("Error generating completion: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)

	renderCmd.ValidArgsFunction = completeCollectionImage
	renameCmd.ValidArgsFunction = completeCollectionImage
	removeCmd.ValidArgsFunction = completeCollectionImage
	validateCmd.ValidArgsFunction = completeCollections
	importCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return completeCollections(cmd, args, toComplete)
		}
		return nil, cobra.ShellCompDirectiveDefault
	}
}

func completeCollections(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	_, ws, err := openWorkspace()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := ws.Collections()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeCollectionImage completes a collection followed by one of its images
func completeCollectionImage(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return completeCollections(cmd, args, toComplete)
	case 1:
		_, ws, err := openWorkspace()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		images, err := ws.Images(args[0])
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return images, cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

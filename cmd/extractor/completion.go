package extractor

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

func init() {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for the given shell.

Completions cover the subcommands and flags, and --path suggests directories
so the base directory of the project to extract can be tabbed in.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: completionShells,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletionV2(out, true)
			case "zsh":
				return rootCmd.GenZshCompletion(out)
			case "fish":
				return rootCmd.GenFishCompletion(out, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
		Example: `
# Bash, current user only
mkdir -p ~/.local/share/bash-completion/completions
extractor completion bash > ~/.local/share/bash-completion/completions/extractor

# Zsh, into a directory listed in fpath
extractor completion zsh > ~/.zsh/completions/_extractor

# Fish
extractor completion fish > ~/.config/fish/completions/extractor.fish

# PowerShell, for the current session
extractor completion powershell | Out-String | Invoke-Expression
`,
	}
	rootCmd.AddCommand(cmd)
}

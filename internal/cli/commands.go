package cli

import (
	"os"

	"github.com/rileyhilliard/sd/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	statusSizeFlag     string
	statusEndpointFlag string
	statusJSONFlag     bool
	dashSizeFlag       string
	dashEndpointFlag   string
	initForce          bool
	initNoPrompt       bool
)

// statusCmd renders the dashboard once and exits.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Fetch the feed and render the dashboard once",
	Long: `Fetch the status feed, compute health aggregates, and print one of
the three fixed layouts.

The size defaults to 'auto', which picks a layout from the terminal
width. Any unrecognized --size value renders the detailed layout.

Examples:
  sd status
  sd status --size compact
  sd status --json
  sd status --endpoint https://status.example.com/api/v1/status`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusCommand(statusSizeFlag, statusEndpointFlag, statusJSONFlag)
	},
}

// dashCmd starts the interactive preview.
var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Interactive dashboard preview",
	Long: `Start an interactive preview of the dashboard.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Refetch the feed
  s           Cycle layout size
  1 / 2 / 3   Compact / medium / detailed

Examples:
  sd dash
  sd dash --size medium`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashCommand(dashSizeFlag, dashEndpointFlag)
	},
}

// initCmd creates a config file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an .sd.yaml configuration",
	Long: `Initialize an sd configuration file in the current directory.

Prompts for the feed endpoint and default size, then writes .sd.yaml.

Examples:
  sd init
  sd init --force
  sd init --no-prompt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce, initNoPrompt)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for sd.

Examples:
  # Bash
  sd completion bash > /etc/bash_completion.d/sd

  # Zsh
  sd completion zsh > "${fpath[1]}/_sd"

  # Fish
  sd completion fish > ~/.config/fish/completions/sd.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusSizeFlag, "size", "", "layout size: auto, compact, medium, or detailed")
	statusCmd.Flags().StringVar(&statusEndpointFlag, "endpoint", "", "status feed URL (overrides config)")
	statusCmd.Flags().BoolVar(&statusJSONFlag, "json", false, "output the computed summary as JSON")

	dashCmd.Flags().StringVar(&dashSizeFlag, "size", "", "layout size: auto, compact, medium, or detailed")
	dashCmd.Flags().StringVar(&dashEndpointFlag, "endpoint", "", "status feed URL (overrides config)")

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNoPrompt, "no-prompt", false, "write defaults without prompting")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}

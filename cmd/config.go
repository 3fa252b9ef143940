// file: cmd/config.go
// version: 1.1.0
// guid: c8f6a0d4-2a8b-48cf-9d08-02cc9915d9fc

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdfalk/fuzzymatch/internal/config"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect and persist settings",
		Long:  "Show the effective settings or save them as a YAML config file.",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeYAML(cmd.OutOrStdout(), config.AppConfig)
		},
	}

	configSaveCmd = &cobra.Command{
		Use:   "save",
		Short: "Write the effective settings to a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("path")
			force, _ := cmd.Flags().GetBool("yes")
			return runConfigSave(cmd, path, force)
		},
	}

	configLoadCmd = &cobra.Command{
		Use:   "load <path>",
		Short: "Check a config file and print the settings it yields",
		Long: `Merge the settings in a YAML config file over the current ones, check
that every name in it resolves and print the effective settings. Flags given
on the command line still take precedence over the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigLoad(cmd, args[0])
		},
	}
)

func init() {
	configSaveCmd.Flags().String("path", "", "destination file (default: the config file in use or $HOME/.fuzzymatch.yaml)")
	configSaveCmd.Flags().Bool("yes", false, "overwrite an existing file without asking")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSaveCmd)
	configCmd.AddCommand(configLoadCmd)
}

func runConfigLoad(cmd *cobra.Command, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot load config file: %w", err)
	}
	if err := config.LoadConfigFromFile(path); err != nil {
		return err
	}

	if _, err := config.AppConfig.ScorerFunc(); err != nil {
		return err
	}
	if _, err := config.AppConfig.ProcessorFunc(); err != nil {
		return err
	}
	if err := config.AppConfig.CheckFormat(); err != nil {
		return err
	}
	if _, err := config.AppConfig.ParsedWeights(); err != nil {
		return err
	}
	return writeYAML(cmd.OutOrStdout(), config.AppConfig)
}

func runConfigSave(cmd *cobra.Command, path string, force bool) error {
	if path == "" {
		path = config.ConfigFilePath()
	}
	if err := config.AppConfig.CheckFormat(); err != nil {
		return err
	}
	if _, err := config.AppConfig.ParsedWeights(); err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		confirmed, err := promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), "Overwrite "+path)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
			return nil
		}
	}

	if err := config.SaveConfigToFile(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)
	return nil
}

func promptYesNo(in io.Reader, out io.Writer, action string) (bool, error) {
	fmt.Fprintf(out, "%s? Type 'yes' to confirm: ", action)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes", nil
}

package main

import (
	"fmt"

	"github.com/Veraticus/markbucks/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or reset the stored configuration",
	}

	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configResetCmd())

	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configured folder and settings",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	folderLine := cli.SubtleStyle.Render("not selected (run: markbucks init)")
	loc, err := a.gate.Location(ctx)
	if err != nil {
		return err
	}
	if !loc.IsZero() {
		folderLine = loc.String()
		if !a.folders.Exists(ctx, loc) {
			folderLine += " " + cli.FormatWarning("missing")
		}
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = cli.SubtleStyle.Render("none")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle("markbucks configuration"))
	fmt.Fprintln(out, cli.FormatField("folder", folderLine))
	fmt.Fprintln(out, cli.FormatField("default type", string(a.settings.DefaultType)))
	fmt.Fprintln(out, cli.FormatField("preferences", a.store.Path()))
	fmt.Fprintln(out, cli.FormatField("log file", a.settings.LogFile))
	fmt.Fprintln(out, cli.FormatField("config file", configFile))
	return nil
}

func configResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the configured folder",
		Long: `Forget the configured folder. The next start asks for a folder again.
Transaction files already written are not touched.`,
		Args: cobra.NoArgs,
		RunE: runConfigReset,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runConfigReset(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")

	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()

	configured, err := a.gate.IsConfigured(ctx)
	if err != nil {
		return err
	}
	if !configured {
		fmt.Fprintln(out, cli.FormatInfo("No folder configured. Nothing to reset."))
		return nil
	}

	if !force {
		ok, err := cli.Confirm(ctx, cli.NewNonBlockingReader(cmd.InOrStdin()), out, "Forget the configured folder?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, cli.FormatInfo("Reset canceled."))
			return nil
		}
	}

	if err := a.gate.Reset(ctx); err != nil {
		return err
	}

	fmt.Fprintln(out, cli.FormatSuccess("Folder forgotten. Run markbucks init to choose a new one."))
	return nil
}

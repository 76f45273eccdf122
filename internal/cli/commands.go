package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sentinela/gateway/internal/geocode"
	"github.com/sentinela/gateway/internal/tui"
)

func newDashCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Interactive terminal dashboard for the selected PIN",
		Long: `Launch the interactive dashboard: daily and hourly calls, most dialed
numbers, alerts and the relationship network.

Switch panels with Tab, move between contacts with the arrow keys, press
Enter for a contact's call summary, r to refresh and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.quiet = true
			d, s, err := a.dashboard()
			if err != nil {
				return err
			}
			if err := s.RequirePIN(); err != nil {
				return err
			}
			p := tea.NewProgram(tui.New(cmd.Context(), d, s), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			if errors.Is(err, tea.ErrProgramKilled) {
				return nil
			}
			return err
		},
	}
}

func newLadaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lada <number>",
		Short: "Look up the area code of a phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, ok := geocode.GetLadaInfo(args[0])
			if !ok {
				return fmt.Errorf("no known area code for %q", args[0])
			}
			if cmd.Flags().Changed("format") {
				if err := checkFormat(a.format); err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), a.format, info)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s, %s\t(%.4f, %.4f)\n", info.Lada, info.Ciudad, info.Estado, info.Lat, info.Lng)
			return err
		},
	}
}

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print every dashboard widget for the selected PIN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, s, err := a.dashboard()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.format, d.Summary(cmd.Context(), s))
		},
	}
}

func newGraphCmd(a *app) *cobra.Command {
	var hover string
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the relationship network of the selected PIN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, s, err := a.dashboard()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.format, d.Network(cmd.Context(), s, hover))
		},
	}
	cmd.Flags().StringVar(&hover, "hover", "", "node id rendered as hovered")
	return cmd
}

func newContactCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contact <node-id>",
		Short: "Print the call summary of one network node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, s, err := a.dashboard()
			if err != nil {
				return err
			}
			if err := s.RequirePIN(); err != nil {
				return err
			}
			r := d.Contact(cmd.Context(), s, args[0])
			if err := render(cmd.OutOrStdout(), a.format, r); err != nil {
				return err
			}
			if r.IsFailed() {
				return r.Err
			}
			return nil
		},
	}
}

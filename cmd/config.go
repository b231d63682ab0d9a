package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"salesdash/internal/prefs"
)

var (
	configTheme string
	configView  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change persisted dashboard preferences",
	Long: `Show the persisted UI preferences (active view, theme), or change
them with --theme / --view. Preferences live in a JSON file under the user
data directory; SALESDASH_DATA_DIR overrides the location.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := prefs.Load()
		if err != nil {
			return err
		}

		changed := false
		if configTheme != "" {
			if configTheme != prefs.ThemeLight && configTheme != prefs.ThemeDark {
				return fmt.Errorf("unknown theme %q (want %s or %s)", configTheme, prefs.ThemeLight, prefs.ThemeDark)
			}
			p.Theme = configTheme
			changed = true
		}
		if configView != "" {
			switch configView {
			case prefs.ViewAnalytics, prefs.ViewTable, prefs.ViewActions:
				p.ActiveView = configView
				changed = true
			default:
				return fmt.Errorf("unknown view %q", configView)
			}
		}
		if changed {
			if err := prefs.Save(p); err != nil {
				return err
			}
		}

		fmt.Printf("view:  %s\ntheme: %s\n", p.ActiveView, p.Theme)
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&configTheme, "theme", "", "set the theme: light or dark")
	configCmd.Flags().StringVar(&configView, "view", "", "set the active view: analytics, table or actions")
	rootCmd.AddCommand(configCmd)
}

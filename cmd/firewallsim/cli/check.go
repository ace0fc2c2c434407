package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/afferafatima/Firewall-Simulator/api"
)

var (
	checkURL       string
	checkKind      string
	checkMainFrame bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Dry-run a navigation check without serving",
	Long: `Check what verdict a navigation would receive. Useful for testing
blocklist entries and Rego policy rules. Denied checks are logged like
any other attempt.`,
	Example: `  firewallsim check -c firewall.yaml --url http://sub.example.com/page
  firewallsim check -c firewall.yaml --url http://example.org --kind link_activated`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkURL, "url", "", "URL to evaluate")
	checkCmd.Flags().StringVar(&checkKind, "kind", string(api.KindUserTyped), "navigation kind (link_activated, user_typed, programmatic, ...)")
	checkCmd.Flags().BoolVar(&checkMainFrame, "main-frame", true, "treat as a top-level navigation")
	_ = checkCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}

	decision, err := eng.guard.Evaluate(context.Background(), checkURL, api.NavigationKind(checkKind), checkMainFrame)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(api.CheckResponse{
		Verdict: decision.Verdict,
		Notice:  decision.Notice,
	})
}

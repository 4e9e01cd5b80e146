package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/solvo/internal/app"
	"github.com/abhisek/solvo/internal/llm"
	"github.com/abhisek/solvo/internal/store"
	"github.com/abhisek/solvo/internal/wizard"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// A usable generation provider is required; without one the app exits
// with configuration guidance instead of starting a broken flow.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("AI provider not configured: %w\n\nSet SOLVO_LLM_PROVIDER and the matching API key (e.g. SOLVO_GEMINI_API_KEY), or export GEMINI_API_KEY / OPENAI_API_KEY / ANTHROPIC_API_KEY", err)
	}

	solves := st.SolveRepo()
	return app.Run(app.Options{
		Service: wizard.NewService(provider, solves),
		Solves:  solves,
	})
}

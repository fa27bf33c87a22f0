package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/quizbee/adjudicator/internal/answer"
	"github.com/quizbee/adjudicator/internal/capability"
	"github.com/quizbee/adjudicator/internal/llm"
	"github.com/quizbee/adjudicator/internal/matcher"
	"github.com/quizbee/adjudicator/internal/orchestrator"
	"github.com/quizbee/adjudicator/internal/reasoning"
	"github.com/quizbee/adjudicator/internal/semantic"
	"github.com/quizbee/adjudicator/internal/synonyms"
)

var checkCmd = &cobra.Command{
	Use:   "check <response> <answer>",
	Short: "Validate a response against a canonical answer",
	Long: "Runs the full validation cascade on a single response and prints\n" +
		"the verdict. Tier 2 needs a running local embedding runtime\n" +
		"(--semantic); Tier 3 needs LLM provider credentials in the\n" +
		"environment (--reasoning). Both also require --policy lenient.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		response, primary := args[0], args[1]

		acceptable, _ := cmd.Flags().GetStringSlice("acceptable")
		promptOnly, _ := cmd.Flags().GetStringSlice("prompt-only")
		domains, _ := cmd.Flags().GetStringSlice("domain")
		policyName, _ := cmd.Flags().GetString("policy")
		question, _ := cmd.Flags().GetString("question")
		useSemantic, _ := cmd.Flags().GetBool("semantic")
		useReasoning, _ := cmd.Flags().GetBool("reasoning")
		cachePath, _ := cmd.Flags().GetString("cache")
		thresholdsPath, _ := cmd.Flags().GetString("thresholds")
		showAttempts, _ := cmd.Flags().GetBool("attempts")

		policy, err := answer.ParsePolicy(policyName)
		if err != nil {
			return err
		}

		canonical := &answer.CanonicalAnswer{
			Primary:            primary,
			Acceptable:         acceptable,
			PromptMoreSpecific: promptOnly,
			Domains:            domains,
		}
		req, err := answer.NewRequest(response, canonical, policy)
		if err != nil {
			return err
		}
		req.QuestionText = question

		table, err := synonyms.Load()
		if err != nil {
			return fmt.Errorf("load synonym table: %w", err)
		}

		thresholds := matcher.DefaultThresholds()
		if thresholdsPath != "" {
			data, err := os.ReadFile(thresholdsPath)
			if err != nil {
				return fmt.Errorf("read thresholds file: %w", err)
			}
			if thresholds, err = matcher.ParseThresholds(data); err != nil {
				return err
			}
		}

		ctx := cmd.Context()
		logger := slog.Default()
		opts := orchestrator.Options{
			Thresholds: thresholds,
			Synonyms:   table,
			DeviceTier: capability.TierAlgorithmic,
			Logger:     logger,
		}

		if useSemantic {
			embedder, cleanup, err := buildEmbedder(ctx, cachePath, logger)
			if err != nil {
				return err
			}
			defer cleanup()
			opts.Semantic = semantic.NewMatcher(embedder, semantic.DefaultConfig())
			opts.DeviceTier = capability.TierSemantic
			opts.Flags.SemanticEnabled = true
		}

		if useReasoning {
			provider, err := llm.NewProviderFromEnv(ctx, logger)
			if err != nil {
				return fmt.Errorf("configure LLM provider: %w", err)
			}
			opts.Judge = reasoning.NewJudge(provider, reasoning.DefaultConfig())
			opts.DeviceTier = capability.TierReasoning
			opts.Flags.SemanticEnabled = true
			opts.Flags.ReasoningEnabled = true
		}

		res := orchestrator.New(opts).Validate(ctx, req)
		printResult(res, showAttempts)
		return nil
	},
}

// buildEmbedder wires the local embedding runtime, with an optional
// SQLite vector cache in front of it.
func buildEmbedder(ctx context.Context, cachePath string, logger *slog.Logger) (semantic.Embedder, func(), error) {
	local := semantic.NewLocalEmbedder(semantic.DefaultLocalConfig(), logger)
	if err := local.Load(ctx); err != nil {
		return nil, nil, fmt.Errorf("load embedding model: %w", err)
	}
	cleanup := func() {
		if err := local.Unload(context.Background()); err != nil {
			logger.Debug("unload embedding model", slog.String("error", err.Error()))
		}
	}

	if cachePath == "" {
		return local, cleanup, nil
	}

	store, err := semantic.OpenSQLiteStore(cachePath)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("open vector cache: %w", err)
	}
	cached := semantic.NewCache(local, store, logger)
	return cached, func() {
		cleanup()
		store.Close()
	}, nil
}

func printResult(res answer.Result, showAttempts bool) {
	verdict := color.New(color.FgRed, color.Bold)
	label := "INCORRECT"
	switch {
	case res.Correct:
		verdict = color.New(color.FgGreen, color.Bold)
		label = "CORRECT"
	case res.NeedsMoreSpecific:
		verdict = color.New(color.FgYellow, color.Bold)
		label = "MORE SPECIFIC ANSWER NEEDED"
	}
	verdict.Println(label)

	fmt.Printf("confidence  %.2f\n", res.Confidence)
	fmt.Printf("match type  %s\n", res.MatchType)
	fmt.Printf("tier        %s\n", res.TierUsed)
	if res.MatchedAnswer != "" {
		fmt.Printf("matched     %s\n", res.MatchedAnswer)
	}
	if res.Explanation != "" {
		fmt.Printf("reason      %s\n", res.Explanation)
	}
	if showAttempts {
		fmt.Printf("attempts    %s\n", strings.Join(res.Attempts, " → "))
	}
}

func init() {
	checkCmd.Flags().StringSliceP("acceptable", "a", nil, "Additional acceptable answers (repeatable)")
	checkCmd.Flags().StringSlice("prompt-only", nil, "Answers that need more specificity (repeatable)")
	checkCmd.Flags().StringSliceP("domain", "d", nil, "Synonym domains to consult (repeatable)")
	checkCmd.Flags().StringP("policy", "p", "standard", "Strictness policy: strict, standard, or lenient")
	checkCmd.Flags().StringP("question", "q", "", "Question text, forwarded to the reasoning tier")
	checkCmd.Flags().Bool("semantic", false, "Enable the semantic embedding tier")
	checkCmd.Flags().Bool("reasoning", false, "Enable the LLM reasoning tier")
	checkCmd.Flags().String("cache", "", "Path to a SQLite embedding cache")
	checkCmd.Flags().String("thresholds", "", "YAML file overriding matcher thresholds")
	checkCmd.Flags().Bool("attempts", false, "Print the matchers attempted, in order")
}

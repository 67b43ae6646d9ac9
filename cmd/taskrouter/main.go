package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zen-systems/taskrouter/pkg/profile"
	"github.com/zen-systems/taskrouter/pkg/registry"
	"github.com/zen-systems/taskrouter/pkg/router"
)

var (
	registryFile string
	debugFlag    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskrouter",
		Short: "Route development tasks to the best-suited execution agent",
		Long: `Taskrouter scores a free-form task description against a registry of
	heterogeneous execution agents and reports which agent (or hybrid
	tool+reasoning pair) should handle it, with cost and performance
	estimates and a fallback chain.`,
	}

	rootCmd.PersistentFlags().StringVar(&registryFile, "registry", "", "path to agent registry YAML file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	rootCmd.AddCommand(routeCmd())
	rootCmd.AddCommand(agentsCmd())
	rootCmd.AddCommand(simulateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadRegistry() (*registry.Registry, error) {
	if registryFile == "" {
		return registry.Default(), nil
	}
	return registry.Load(registryFile)
}

func routeCmd() *cobra.Command {
	var (
		fileCount int
		urgency   string
		quality   string
		budget    string
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "route [task]",
		Short: "Route a single task description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return fmt.Errorf("failed to load registry: %w", err)
			}

			engine := router.New(reg, router.WithDebug(debugFlag))
			decision, err := engine.Route(args[0], profile.TaskContext{
				FileCount:          fileCount,
				Urgency:            urgency,
				QualityRequirement: quality,
				BudgetConstraint:   budget,
			})
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(decision)
			}

			printDecision(decision)
			return nil
		},
	}

	cmd.Flags().IntVar(&fileCount, "files", 0, "number of files the task touches")
	cmd.Flags().StringVar(&urgency, "urgency", "", "task urgency (low, normal, high)")
	cmd.Flags().StringVar(&quality, "quality", "", "quality requirement (draft, standard, production)")
	cmd.Flags().StringVar(&budget, "budget", "", "budget constraint (budget, standard, premium)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the decision as JSON")
	return cmd
}

func printDecision(d *router.Decision) {
	fmt.Printf("Selected: %s (%s)\n", d.Selected.Candidate.Name(), d.Selected.Candidate.Kind)
	fmt.Printf("  score=%.1f cost=%.4f performance=%s\n",
		d.Selected.Score, d.Selected.EstimatedCost, d.Selected.Performance)
	fmt.Printf("  reasoning: %s\n", d.Selected.Reasoning)
	fmt.Printf("  profile: complexity=%d domains=%s compliance=%s\n",
		d.Profile.ComplexityScore,
		strings.Join(d.Profile.DomainTags, ","),
		strings.Join(d.Profile.ComplianceTags, ","))
	for i, fb := range d.Fallbacks {
		fmt.Printf("Fallback %d: %s (score=%.1f)\n", i+1, fb.Candidate.Name(), fb.Score)
	}
}

func agentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List the registered agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return fmt.Errorf("failed to load registry: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND\tDOMAINS\tSPECIALIZATIONS\tPERF\tCOST")
			for _, a := range reg.Agents() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					a.Name, a.Kind,
					strings.Join(a.DomainExpertise, ","),
					strings.Join(a.Specializations, ","),
					a.PerformanceTier, a.CostTier)
			}
			return w.Flush()
		},
	}
}

func simulateCmd() *cobra.Command {
	var window int

	cmd := &cobra.Command{
		Use:   "simulate [file]",
		Short: "Route tasks from a file (one per line) and report metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return fmt.Errorf("failed to load registry: %w", err)
			}

			in := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			engine := router.New(reg, router.WithDebug(debugFlag))
			scanner := bufio.NewScanner(in)
			routed := 0
			for scanner.Scan() {
				task := strings.TrimSpace(scanner.Text())
				if task == "" {
					continue
				}
				decision, err := engine.Route(task, profile.TaskContext{})
				if err != nil {
					fmt.Fprintf(os.Stderr, "skipping %q: %v\n", task, err)
					continue
				}
				routed++
				fmt.Printf("%-40.40s -> %s (%.1f)\n", task, decision.Selected.Candidate.Name(), decision.Selected.Score)
			}
			if err := scanner.Err(); err != nil {
				return err
			}

			report := engine.Metrics(window)
			fmt.Printf("\nRouted %d task(s); window=%d\n", routed, report.WindowSize)
			fmt.Printf("Distribution: %v\n", report.AgentDistribution)
			fmt.Printf("Cost: total=%.4f mean=%.4f trend=%s\n",
				report.CostAnalysis.TotalCost, report.CostAnalysis.MeanCost, report.CostAnalysis.Trend)
			for _, rec := range report.Recommendations {
				fmt.Printf("Recommendation: %s %s (share %.0f%%)\n", rec.AgentName, rec.Kind, rec.Share*100)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&window, "window", 0, "metrics window size (default 20)")
	return cmd
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"egy-discovery/config"
	"egy-discovery/pkg/workflowfile"

	"github.com/spf13/cobra"
)

var (
	workflowsDir string
	platform     string
	description  string
)

var rootCmd = &cobra.Command{
	Use:   "workflowctl",
	Short: "Manage n8n and Zapier workflow definition files",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("dir") {
			return nil
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		workflowsDir = cfg.Workflows.Dir
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List workflow files",
	RunE:  runList,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every workflow file",
	RunE:  runValidate,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show file counts and sizes per platform",
	RunE:  runStats,
}

var createCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a workflow from examples/" + workflowfile.TemplateFile,
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workflowsDir, "dir", "d", "workflows", "Workflows root directory (default from config workflows.dir)")
	rootCmd.PersistentFlags().StringVarP(&platform, "platform", "p", "", "Platform: n8n, zapier or examples")
	createCmd.Flags().StringVar(&description, "description", "", "Description for the new workflow")

	rootCmd.AddCommand(listCmd, validateCmd, statsCmd, createCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runList(cmd *cobra.Command, args []string) error {
	m, err := workflowfile.New(workflowsDir)
	if err != nil {
		return err
	}
	listing, err := m.List(platform)
	if err != nil {
		return err
	}
	printListing(cmd.OutOrStdout(), listing)
	return nil
}

func printListing(w io.Writer, listing workflowfile.Listing) {
	for _, p := range workflowfile.Platforms {
		entries := listing.Workflows[p]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s Workflows:\n%s\n", strings.ToUpper(p), strings.Repeat("-", 50))
		for _, e := range entries {
			fmt.Fprintf(w, "  %s\n    Name: %s\n    Version: %s\n", e.Filename, e.Name, e.Version)
			if len(e.Tags) > 0 {
				fmt.Fprintf(w, "    Tags: %s\n", strings.Join(e.Tags, ", "))
			}
			if e.Description != "" {
				fmt.Fprintf(w, "    Description: %s\n", e.Description)
			}
			fmt.Fprintf(w, "    Size: %d bytes\n\n", e.Size)
		}
	}
	for _, s := range listing.Skipped {
		fmt.Fprintf(w, "Error reading %s\n", s)
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	m, err := workflowfile.New(workflowsDir)
	if err != nil {
		return err
	}
	results, err := m.ValidateAll()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	invalid := 0
	for _, p := range workflowfile.Platforms {
		if len(results[p]) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s Validation Results:\n%s\n", strings.ToUpper(p), strings.Repeat("-", 50))
		for _, r := range results[p] {
			status := "VALID"
			if !r.Valid {
				status = "INVALID"
				invalid++
			}
			fmt.Fprintf(w, "  %s: %s\n", r.FilePath, status)
			for _, e := range r.Errors {
				fmt.Fprintf(w, "    Error: %s\n", e)
			}
			for _, warn := range r.Warnings {
				fmt.Fprintf(w, "    Warning: %s\n", warn)
			}
			fmt.Fprintln(w)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d invalid workflow file(s)", invalid)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	m, err := workflowfile.New(workflowsDir)
	if err != nil {
		return err
	}
	stats, err := m.Stats()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\nWorkflow Statistics:\n%s\n", strings.Repeat("-", 30))
	fmt.Fprintf(w, "Total files: %d\n", stats.TotalFiles)
	fmt.Fprintf(w, "Total size: %d bytes (%.1f KB)\n", stats.TotalSize, float64(stats.TotalSize)/1024)
	fmt.Fprintln(w, "\nBy Platform:")
	for _, p := range workflowfile.Platforms {
		if ps := stats.ByPlatform[p]; ps.Count > 0 {
			fmt.Fprintf(w, "  %s: %d files, %d bytes\n", p, ps.Count, ps.Size)
		}
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	if platform == "" {
		return fmt.Errorf("--platform is required when creating a workflow")
	}
	m, err := workflowfile.New(workflowsDir)
	if err != nil {
		return err
	}
	path, err := m.Create(platform, args[0], description)
	if err != nil {
		return fmt.Errorf("error creating workflow: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created workflow: %s\n", path)
	return nil
}

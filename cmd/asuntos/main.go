package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joacoherrero/AsuntosPublicos/pkg/config"
	"github.com/joacoherrero/AsuntosPublicos/pkg/logging"
	"github.com/joacoherrero/AsuntosPublicos/pkg/pipeline"
)

var version = "0.1.0"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "asuntos",
		Short: "Public affairs monitoring pipeline",
		Long: `Asuntos monitors the official gazette, news feeds and the
legislative committee agendas for public affairs clients.

It ingests the day's sources and produces:
  - Structured extracts of every gazette document (TSV, XLSX, JSON)
  - Topic classification with per-client routing
  - Word digests of gazette and news matches per client
  - The committee meeting schedule of both chambers`,
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(gazetteCmd())
	rootCmd.AddCommand(newsCmd())
	rootCmd.AddCommand(agendaCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildPipeline() (*pipeline.Pipeline, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log := logging.New("asuntos")
	return pipeline.New(cfg, log), nil
}

func runCmd() *cobra.Command {
	var source, date string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every stage: gazette, news and agenda",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPipeline()
			if err != nil {
				return err
			}
			return p.Run(cmd.Context(), source, date)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "process a local PDF instead of downloading")
	cmd.Flags().StringVar(&date, "date", "", "process a specific day (YYYY-MM-DD)")
	return cmd
}

func gazetteCmd() *cobra.Command {
	var source, date string

	cmd := &cobra.Command{
		Use:   "gazette",
		Short: "Process the day's gazette issue",
		Long: `Locate and download the day's gazette issue, extract and classify
its documents, and write the table and per-client reports.

Example:
  asuntos gazette
  asuntos gazette --date 2026-08-21
  asuntos gazette --source boletin.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPipeline()
			if err != nil {
				return err
			}
			return p.RunGazette(cmd.Context(), source, date)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "process a local PDF instead of downloading")
	cmd.Flags().StringVar(&date, "date", "", "process a specific day (YYYY-MM-DD)")
	return cmd
}

func newsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "news",
		Short: "Ingest and classify today's news",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPipeline()
			if err != nil {
				return err
			}
			return p.RunNews(cmd.Context())
		},
	}
}

func agendaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agenda",
		Short: "Scrape the committee meeting agendas",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPipeline()
			if err != nil {
				return err
			}
			return p.RunAgenda(cmd.Context())
		},
	}
}

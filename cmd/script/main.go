package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sentimenttracker/api"
	"sentimenttracker/cmd"
	"sentimenttracker/internal/domain"
	"sentimenttracker/internal/logger"
	"sentimenttracker/internal/repository"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "script",
		Short: "maintenance tasks for the sentiment tracker",
	}
	root.AddCommand(
		winRatesCmd(),
		importSignalsCmd(),
		exportSignalsCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func withHandler(fn func(ctx context.Context, handler *api.ApiHandler) error) error {
	handler, _, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(handler)

	ctx := logger.WithLogger(context.Background(), handler.Logger)
	return fn(ctx, handler)
}

func parseSource(s string) (domain.Source, error) {
	for _, source := range domain.AllSources {
		if string(source) == s {
			return source, nil
		}
	}
	return "", fmt.Errorf("unknown source %q, expected one of %v", s, domain.AllSources)
}

func winRatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "win-rates",
		Short: "print the win rate of each sentiment source",
		RunE: func(c *cobra.Command, args []string) error {
			return withHandler(func(ctx context.Context, handler *api.ApiHandler) error {
				winRates, err := handler.WinRateService.GetWinRates(ctx)
				if err != nil {
					return err
				}
				for _, source := range domain.AllSources {
					w := winRates[source]
					fmt.Printf("%-14s %6.2f%% (%d wins, %d losses)\n", source, w.WinRate, w.Wins, w.Losses)
				}

				aggregated, err := json.Marshal(winRates)
				if err != nil {
					return err
				}
				handler.Logger.Infof("win rates: %s", string(aggregated))
				return nil
			})
		},
	}
}

func importSignalsCmd() *cobra.Command {
	var sourceStr, file string
	command := &cobra.Command{
		Use:   "import-signals",
		Short: "load a signals csv into a source's signal table",
		RunE: func(c *cobra.Command, args []string) error {
			source, err := parseSource(sourceStr)
			if err != nil {
				return err
			}
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			signals, err := readSignalsCsv(f)
			if err != nil {
				return err
			}

			return withHandler(func(ctx context.Context, handler *api.ApiHandler) error {
				tx, err := handler.Db.Begin()
				if err != nil {
					return err
				}
				defer tx.Rollback()

				err = repository.NewSignalRepository(handler.Db).AddMany(tx, source, signals)
				if err != nil {
					return err
				}
				if err := tx.Commit(); err != nil {
					return err
				}

				logger.FromContext(ctx).Infof("imported %d %s signals from %s", len(signals), source, file)
				return nil
			})
		},
	}
	command.Flags().StringVar(&sourceStr, "source", "", "twitter, googleTrends or news")
	command.Flags().StringVar(&file, "file", "", "path to the csv")
	command.MarkFlagRequired("source")
	command.MarkFlagRequired("file")

	return command
}

func exportSignalsCmd() *cobra.Command {
	var sourceStr, file string
	command := &cobra.Command{
		Use:   "export-signals",
		Short: "dump a source's signal table to csv",
		RunE: func(c *cobra.Command, args []string) error {
			source, err := parseSource(sourceStr)
			if err != nil {
				return err
			}

			return withHandler(func(ctx context.Context, handler *api.ApiHandler) error {
				signals, err := repository.NewSignalRepository(handler.Db).List(source)
				if err != nil {
					return err
				}

				f, err := os.Create(file)
				if err != nil {
					return err
				}
				defer f.Close()

				if err := writeSignalsCsv(f, signals); err != nil {
					return err
				}

				logger.FromContext(ctx).Infof("exported %d %s signals to %s", len(signals), source, file)
				return nil
			})
		},
	}
	command.Flags().StringVar(&sourceStr, "source", "", "twitter, googleTrends or news")
	command.Flags().StringVar(&file, "file", "", "path to write the csv to")
	command.MarkFlagRequired("source")
	command.MarkFlagRequired("file")

	return command
}

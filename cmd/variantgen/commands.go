package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"headcover-configurator/logging"
	"headcover-configurator/models"
	"headcover-configurator/repository"
	"headcover-configurator/service"
	"headcover-configurator/variants"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

type globalFlags struct {
	Catalog string
	Verbose bool
}

func newRootCommand() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:          "variantgen",
		Short:        "Generate headcover variant sets from a catalog snapshot.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.Catalog, "catalog", "", "Path to the YAML catalog snapshot")
	root.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log skipped variants to stderr")
	_ = root.MarkPersistentFlagRequired("catalog")

	root.AddCommand(newGenerateCommand(&flags))
	root.AddCommand(newValidateCommand(&flags))
	return root
}

func newGenerateCommand(flags *globalFlags) *cobra.Command {
	var configPath, collection, format string
	var strict bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the variant set for a configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != formatJSON && format != formatTable {
				return fmt.Errorf("unsupported format %q, use json or table", format)
			}

			logger := cliLogger(flags.Verbose)
			repo, err := repository.LoadSnapshot(flags.Catalog, logger)
			if err != nil {
				return err
			}

			cfg, err := readConfiguration(cmd.InOrStdin(), configPath)
			if err != nil {
				return err
			}
			if collection != "" {
				cfg.CollectionID = collection
			}

			svc := service.NewVariantService(repo, variants.NewEngine(variants.WithLogger(logger)), logger)
			var preview *models.VariantPreview
			if strict {
				preview, err = svc.Submit(cmd.Context(), cfg)
			} else {
				preview, err = svc.Preview(cmd.Context(), cfg)
			}
			if preview != nil {
				if werr := writePreview(cmd.OutOrStdout(), preview, format); werr != nil {
					return werr
				}
			}
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "-", "Path to the configuration JSON, - for stdin")
	cmd.Flags().StringVar(&collection, "collection", "", "Override the configuration's collection ID")
	cmd.Flags().StringVar(&format, "format", formatJSON, "Output format: json or table")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any variant is skipped")
	return cmd
}

func newValidateCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that a catalog snapshot loads and every collection has a price table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repository.LoadSnapshot(flags.Catalog, cliLogger(flags.Verbose))
			if err != nil {
				return err
			}
			return validateSnapshot(cmd.Context(), repo, cmd.OutOrStdout())
		},
	}
}

// validateSnapshot reports collections without a price table and price entries for unknown shapes
func validateSnapshot(ctx context.Context, repo *repository.SnapshotRepository, out io.Writer) error {
	catalog, err := repo.GetCatalog(ctx)
	if err != nil {
		return err
	}

	var problems []string
	for _, id := range repo.CollectionIDs() {
		table, err := repo.GetPriceTable(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			problems = append(problems, fmt.Sprintf("collection %s: no price table", id))
			continue
		}
		if err != nil {
			return err
		}
		for shapeID := range table.Prices {
			if shapeID == models.FairwayShapeID {
				continue
			}
			if _, ok := catalog.Shape(shapeID); !ok {
				problems = append(problems, fmt.Sprintf("collection %s: price for unknown shape %s", id, shapeID))
			}
		}
	}

	for _, p := range problems {
		fmt.Fprintln(out, p)
	}
	if len(problems) > 0 {
		return fmt.Errorf("catalog snapshot has %d problem(s)", len(problems))
	}
	fmt.Fprintln(out, "catalog snapshot ok")
	return nil
}

func readConfiguration(stdin io.Reader, path string) (models.Configuration, error) {
	var cfg models.Configuration

	r := stdin
	if path != "-" && path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to open configuration: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}

func writePreview(out io.Writer, preview *models.VariantPreview, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(preview)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tSKU\tNAME\tPRICE\tWEIGHT")
	for _, v := range preview.Variants {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", v.Position, v.SKU, v.Name, v.Price, v.Weight)
	}
	for _, s := range preview.Skipped {
		fmt.Fprintf(tw, "-\tskipped %s\t%s\t%s\t\n", s.Stage, s.ShapeID, s.Reason)
	}
	return tw.Flush()
}

func cliLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := logging.NewLogger(logging.Config{Level: "debug", Format: "console", Development: true})
	if err != nil {
		return logging.NewDefaultLogger()
	}
	return logger
}

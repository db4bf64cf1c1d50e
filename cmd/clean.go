package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maeasam/shataba/internal/resourcemodel"
	"github.com/maeasam/shataba/internal/table"
	"github.com/maeasam/shataba/internal/thesaurus"
	"github.com/maeasam/shataba/internal/vocab"
)

var (
	cleanInput          string
	cleanOutput         string
	cleanModel          string
	cleanConcepts       string
	cleanResourceModel  string
	cleanThesaurus      string
	cleanMappingsOutput string
	cleanSummary        bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Validate and clean concept columns in a table",
	Long: `Reads a CSV or XLSX table, resolves the concept fields of a resource model
to their acceptable vocabulary terms, blanks every unrecognized value, and
writes the cleaned table plus a concept-mappings CSV.

Reference files default to <references dir>/<Model>.json,
<references dir>/<Model>_concepts.json and the configured thesaurus document.

Examples:
  # Clean a site export with default reference paths
  shataba clean -i sites.csv

  # Explicit reference files and output
  shataba clean -i grid.xlsx -m maeasam_grid --thesaurus refs/collections.xml -o grid_cleaned.csv

  # Include the concept node resolution summary
  shataba clean -i sites.csv --summary`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		model, err := resourcemodel.ParseModelType(cleanModel)
		if err != nil {
			return err
		}
		paths := resolvePaths(model)

		fields, catalog, index, err := loadReferences(paths)
		if err != nil {
			return err
		}

		tbl, err := table.Read(cleanInput)
		if err != nil {
			return eris.Wrap(err, "clean: read input table")
		}
		zap.L().Info("loaded input table",
			zap.String("path", cleanInput),
			zap.Int("rows", tbl.RowCount()),
			zap.Int("columns", len(tbl.Headers)),
		)

		mappings := vocab.Resolve(fields, index, catalog)

		validator := &vocab.Validator{
			Workers:    cfg.Validate.Workers,
			SampleSize: cfg.Validate.SampleSize,
		}
		report, err := validator.Validate(ctx, tbl, mappings)
		if err != nil {
			return eris.Wrap(err, "clean: validate")
		}
		zap.L().Info("validation complete",
			zap.String("run_id", report.RunID),
			zap.Int("columns_checked", len(report.ColumnsChecked)),
			zap.Int("offending_found", report.OffendingFound),
		)

		renderReport(os.Stdout, report)
		if report.OffendingFound > 0 {
			renderOffendingDetail(os.Stdout, report)
		}

		if err := os.MkdirAll(filepath.Dir(paths.output), 0o755); err != nil {
			return eris.Wrap(err, "clean: create output dir")
		}
		if err := tbl.WriteCSV(paths.output); err != nil {
			return eris.Wrap(err, "clean: write cleaned table")
		}
		zap.L().Info("cleaned table written", zap.String("path", paths.output))

		if err := writeMappingsCSV(paths.mappingsOutput, mappings); err != nil {
			return eris.Wrap(err, "clean: write mappings")
		}
		zap.L().Info("concept mappings written", zap.String("path", paths.mappingsOutput))

		renderMappings(os.Stdout, mappings)

		if cleanSummary {
			renderNodeSummary(os.Stdout, vocab.Summarize(mappings), mappings)
		}

		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanInput, "input", "i", "", "path to input table, CSV or XLSX (required)")
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "path for the cleaned CSV (default: <output dir>/<input stem>_cleaned.csv)")
	cleanCmd.Flags().StringVarP(&cleanModel, "model", "m", "site", "resource model type (actor, administrative_model, chronology, information, maeasam_grid, remote_sensing, site)")
	cleanCmd.Flags().StringVarP(&cleanConcepts, "concepts", "c", "", "path to the category catalog JSON (default derived from model)")
	cleanCmd.Flags().StringVar(&cleanResourceModel, "resource-model", "", "path to the resource model graph JSON (default derived from model)")
	cleanCmd.Flags().StringVar(&cleanThesaurus, "thesaurus", "", "path to the SKOS collections document (default from config)")
	cleanCmd.Flags().StringVar(&cleanMappingsOutput, "mappings-output", "", "path for the concept-mappings CSV (default: <output dir>/<input stem>_concept_mappings.csv)")
	cleanCmd.Flags().BoolVar(&cleanSummary, "summary", false, "show the concept node resolution summary")
	_ = cleanCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(cleanCmd)
}

// referencePaths carries every file path one clean run touches.
type referencePaths struct {
	graph          string
	concepts       string
	thesaurus      string
	output         string
	mappingsOutput string
}

// resolvePaths fills unset flags from config defaults and the model type.
func resolvePaths(model resourcemodel.ModelType) referencePaths {
	p := referencePaths{
		graph:          cleanResourceModel,
		concepts:       cleanConcepts,
		thesaurus:      cleanThesaurus,
		output:         cleanOutput,
		mappingsOutput: cleanMappingsOutput,
	}
	if p.graph == "" {
		p.graph = model.GraphFile(cfg.References.Dir)
	}
	if p.concepts == "" {
		p.concepts = model.ConceptsFile(cfg.References.Dir)
	}
	if p.thesaurus == "" {
		p.thesaurus = cfg.References.Thesaurus
	}

	stem := inputStem(cleanInput)
	if p.output == "" {
		p.output = filepath.Join(cfg.Output.Dir, stem+"_cleaned.csv")
	}
	if p.mappingsOutput == "" {
		p.mappingsOutput = filepath.Join(cfg.Output.Dir, stem+"_concept_mappings.csv")
	}
	return p
}

// loadReferences loads the graph, catalog and thesaurus. A missing or
// malformed thesaurus is surfaced as a warning and replaced with an empty
// index; the run continues with every collection lookup resolving to absent.
func loadReferences(paths referencePaths) ([]resourcemodel.Field, *vocab.Catalog, thesaurus.Index, error) {
	fields, err := resourcemodel.Load(paths.graph)
	if err != nil {
		return nil, nil, nil, eris.Wrap(err, "load resource model")
	}
	zap.L().Info("loaded resource model",
		zap.String("path", paths.graph),
		zap.Int("concept_fields", len(fields)),
	)

	catalog, err := vocab.LoadCatalog(paths.concepts)
	if err != nil {
		return nil, nil, nil, eris.Wrap(err, "load category catalog")
	}
	zap.L().Info("loaded category catalog",
		zap.String("path", paths.concepts),
		zap.Int("categories", catalog.Len()),
	)

	index, err := thesaurus.Load(paths.thesaurus)
	switch {
	case eris.Is(err, thesaurus.ErrUnavailable):
		zap.L().Warn("thesaurus document not found, continuing with empty index",
			zap.String("path", paths.thesaurus),
		)
		index = thesaurus.Index{}
	case eris.Is(err, thesaurus.ErrMalformed):
		zap.L().Error("thesaurus document not parseable, continuing with empty index",
			zap.String("path", paths.thesaurus),
			zap.Error(err),
		)
		index = thesaurus.Index{}
	case err != nil:
		return nil, nil, nil, eris.Wrap(err, "load thesaurus")
	default:
		zap.L().Info("loaded thesaurus",
			zap.String("path", paths.thesaurus),
			zap.Int("collections", len(index)),
		)
	}

	return fields, catalog, index, nil
}

// inputStem returns the input file name without directory or extension.
func inputStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

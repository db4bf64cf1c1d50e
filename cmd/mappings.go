package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maeasam/shataba/internal/resourcemodel"
	"github.com/maeasam/shataba/internal/vocab"
)

var (
	mappingsModel         string
	mappingsConcepts      string
	mappingsResourceModel string
	mappingsThesaurus     string
	mappingsOutput        string
)

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Show concept field to vocabulary mappings without cleaning",
	Long: `Resolves the concept fields of a resource model against the thesaurus and
category catalog, then prints the resolution summary and the per-field
mapping table. No input table is read and nothing is cleaned.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		model, err := resourcemodel.ParseModelType(mappingsModel)
		if err != nil {
			return err
		}

		paths := referencePaths{
			graph:     mappingsResourceModel,
			concepts:  mappingsConcepts,
			thesaurus: mappingsThesaurus,
		}
		if paths.graph == "" {
			paths.graph = model.GraphFile(cfg.References.Dir)
		}
		if paths.concepts == "" {
			paths.concepts = model.ConceptsFile(cfg.References.Dir)
		}
		if paths.thesaurus == "" {
			paths.thesaurus = cfg.References.Thesaurus
		}

		fields, catalog, index, err := loadReferences(paths)
		if err != nil {
			return err
		}

		mappings := vocab.Resolve(fields, index, catalog)

		renderNodeSummary(os.Stdout, vocab.Summarize(mappings), mappings)
		renderMappings(os.Stdout, mappings)

		if mappingsOutput != "" {
			if err := writeMappingsCSV(mappingsOutput, mappings); err != nil {
				return eris.Wrap(err, "mappings: write csv")
			}
			zap.L().Info("concept mappings written", zap.String("path", mappingsOutput))
		}

		return nil
	},
}

func init() {
	mappingsCmd.Flags().StringVarP(&mappingsModel, "model", "m", "site", "resource model type")
	mappingsCmd.Flags().StringVarP(&mappingsConcepts, "concepts", "c", "", "path to the category catalog JSON (default derived from model)")
	mappingsCmd.Flags().StringVar(&mappingsResourceModel, "resource-model", "", "path to the resource model graph JSON (default derived from model)")
	mappingsCmd.Flags().StringVar(&mappingsThesaurus, "thesaurus", "", "path to the SKOS collections document (default from config)")
	mappingsCmd.Flags().StringVarP(&mappingsOutput, "output", "o", "", "write the mapping rows to a CSV file")
	rootCmd.AddCommand(mappingsCmd)
}

package main

import (
	"encoding/json"
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/pkg/api"
	"ethereplodor-server/pkg/catalog"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// document is one schema file the generator emits.
type document struct {
	file        string
	title       string
	description string
	value       interface{}
}

// File shapes of the embedded catalog, one JSON array each.
type (
	itemFile     []domain.Item
	creatureFile []catalog.Species
	questFile    []domain.Quest
	enemyFile    []catalog.EnemyArchetype
	areaFile     []domain.Area
)

var documents = []document{
	{"snapshot.schema.json", "Ethereplodor Snapshot", "State published after every simulation tick", new(api.Snapshot)},
	{"command.schema.json", "Ethereplodor Command", "Root object of every client command", new(api.ClientCommand)},
	{"items.schema.json", "Item Catalog", "Validates pkg/catalog/data/items.json", new(itemFile)},
	{"creatures.schema.json", "Creature Catalog", "Validates pkg/catalog/data/creatures.json", new(creatureFile)},
	{"quests.schema.json", "Quest Catalog", "Validates pkg/catalog/data/quests.json", new(questFile)},
	{"enemies.schema.json", "Enemy Catalog", "Validates pkg/catalog/data/enemies.json", new(enemyFile)},
	{"areas.schema.json", "Area Catalog", "Validates pkg/catalog/data/areas.json", new(areaFile)},
}

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write the JSON schemas into")
	flag.Parse()

	if outDir == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	for _, doc := range documents {
		path := filepath.Join(outDir, doc.file)
		if err := writeSchema(path, buildSchema(doc)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", doc.file, err)
			os.Exit(1)
		}
		fmt.Println("wrote", path)
	}
}

func buildSchema(doc document) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		AllowAdditionalProperties:  true,
	}
	schema := reflector.Reflect(doc.value)
	schema.Title = doc.title
	schema.Description = doc.description
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}

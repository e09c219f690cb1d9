// Command planner reads a course catalog and writes a generated
// timetable. By default it reads a JSON catalog from stdin and writes
// output.json; pass -catalog to read a YAML or XLS file instead, and
// -config to tune the annealing run.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/campusplan/timetable-planner/internal/infrastructure"
	"github.com/campusplan/timetable-planner/internal/usecases"
)

func main() {
	catalogPath := flag.String("catalog", "", "path to a YAML or XLS catalog file (default: read JSON from stdin)")
	xlsCharset := flag.String("xls-charset", "windows-1251", "character encoding of an XLS catalog file")
	configPath := flag.String("config", "", "path to an engine config YAML file (default: built-in weights)")
	outputPath := flag.String("output", "output.json", "path to write the generated plan to")
	flag.Parse()

	logger := log.New(os.Stderr, "planner: ", log.LstdFlags)

	catalogRepo := resolveCatalogRepository(*catalogPath, *xlsCharset)

	var engineRepo usecases.EngineConfigRepository
	if *configPath != "" {
		engineRepo = infrastructure.NewYAMLEngineConfigRepository(*configPath)
	} else {
		engineRepo = infrastructure.DefaultEngineConfigRepository{}
	}

	outFile, err := os.Create(*outputPath)
	if err != nil {
		logger.Fatalf("creating output file: %v", err)
	}
	defer outFile.Close()

	service := usecases.NewPlannerService(catalogRepo, engineRepo, infrastructure.NewJSONOutputWriter(outFile), logger)

	result, err := service.Run()
	if err != nil {
		logger.Fatalf("%v", err)
	}

	fmt.Fprintf(os.Stderr, "wrote %d lessons to %s (%s)\n", len(result.Output.Lessons), *outputPath, result.Termination)
}

func resolveCatalogRepository(path, xlsCharset string) usecases.CatalogRepository {
	if path == "" {
		return infrastructure.NewJSONCatalogRepository(os.Stdin)
	}
	if strings.HasSuffix(strings.ToLower(path), ".xls") {
		return infrastructure.NewXLSCatalogRepository(path, xlsCharset)
	}
	return infrastructure.NewYAMLCatalogRepository(path)
}

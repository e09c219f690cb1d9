// Command viewer serves a read-only HTML page rendering an already
// generated output.json. It is deliberately a separate binary from
// planner: viewing a plan has no effect on, and no dependency on, how
// that plan was produced.
package main

import (
	"flag"
	"log"

	"github.com/campusplan/timetable-planner/internal/web"
)

func main() {
	outputPath := flag.String("output", "output.json", "path to a plan written by the planner command")
	port := flag.Int("port", 8060, "port to listen on")
	flag.Parse()

	output, err := web.LoadOutputFile(*outputPath)
	if err != nil {
		log.Fatalf("loading plan: %v", err)
	}

	server := web.NewServer(output)
	if err := server.Start(*port); err != nil {
		log.Fatalf("viewer server: %v", err)
	}
}

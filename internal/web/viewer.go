// Package web serves a read-only view of a finished plan. It is a
// separate concern from the planner CLI: nothing here participates in
// generating a timetable, only in displaying one that already exists.
package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"sort"

	"github.com/campusplan/timetable-planner/internal/annealing"
	"github.com/campusplan/timetable-planner/internal/catalog"
)

// indexTemplate renders one plan as a table grouped by day, sorted by
// hour within each day.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Timetable</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; margin-bottom: 2rem; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f2f2f2; }
h2 { margin-top: 2rem; }
</style>
</head>
<body>
<h1>Timetable</h1>
{{range .Days}}
<h2>Day {{.Day}} ({{.DayName}})</h2>
<table>
<tr><th>Hour</th><th>Group</th><th>Subject</th><th>Teacher</th><th>Classroom</th></tr>
{{range .Lessons}}
<tr><td>{{.Time.Hour}}</td><td>{{.Group}}</td><td>{{.SubjectName}}</td><td>{{.Teacher}}</td><td>{{.Classroom}}</td></tr>
{{end}}
</table>
{{end}}
</body>
</html>
`))

// dayGroup is one day's lessons, sorted by hour, for template rendering.
type dayGroup struct {
	Day     uint8
	DayName string
	Lessons []catalog.LessonRecord
}

type indexData struct {
	Days []dayGroup
}

// Server serves a single, already-generated PlanOutput.
type Server struct {
	output catalog.PlanOutput
}

// NewServer builds a viewer over output.
func NewServer(output catalog.PlanOutput) *Server {
	return &Server{output: output}
}

// Start listens on port and blocks serving the viewer.
func (s *Server) Start(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)

	addr := fmt.Sprintf(":%d", port)
	log.Printf("timetable viewer listening on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := indexData{Days: groupByDay(s.output.Lessons)}
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Printf("rendering timetable: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func groupByDay(lessons []catalog.LessonRecord) []dayGroup {
	byDay := make(map[uint8][]catalog.LessonRecord)
	for _, l := range lessons {
		byDay[l.Time.Day] = append(byDay[l.Time.Day], l)
	}

	days := make([]uint8, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	groups := make([]dayGroup, 0, len(days))
	for _, d := range days {
		lessons := byDay[d]
		sort.Slice(lessons, func(i, j int) bool { return lessons[i].Time.Hour < lessons[j].Time.Hour })
		groups = append(groups, dayGroup{Day: d, DayName: annealing.SimpleDate{Day: d}.DayName(), Lessons: lessons})
	}
	return groups
}

// LoadOutputFile reads a PlanOutput previously written by the planner.
func LoadOutputFile(path string) (catalog.PlanOutput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalog.PlanOutput{}, fmt.Errorf("reading plan output: %w", err)
	}

	var output catalog.PlanOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return catalog.PlanOutput{}, fmt.Errorf("parsing plan output: %w", err)
	}
	return output, nil
}

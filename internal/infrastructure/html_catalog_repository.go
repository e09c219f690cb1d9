package infrastructure

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/campusplan/timetable-planner/internal/catalog"
)

// HTMLCatalogRepository scrapes a PlanInput out of a published course
// catalog page: one <table> per resource kind, identified by id, each
// row's cells holding that resource's fields in column order. This is
// the format a registrar's office publishes to the web long before any
// machine-readable export exists.
type HTMLCatalogRepository struct {
	url    string
	client *http.Client
}

// NewHTMLCatalogRepository builds a repository that fetches url with
// client's default settings (nil uses http.DefaultClient).
func NewHTMLCatalogRepository(url string, client *http.Client) *HTMLCatalogRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTMLCatalogRepository{url: url, client: client}
}

// LoadCatalog fetches and parses the page.
func (r *HTMLCatalogRepository) LoadCatalog() (catalog.PlanInput, error) {
	resp, err := r.client.Get(r.url)
	if err != nil {
		return catalog.PlanInput{}, fmt.Errorf("fetching catalog page: %w", err)
	}
	defer resp.Body.Close()

	return parseCatalogHTML(resp.Body)
}

func parseCatalogHTML(r io.Reader) (catalog.PlanInput, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return catalog.PlanInput{}, fmt.Errorf("parsing catalog HTML: %w", err)
	}

	var input catalog.PlanInput

	doc.Find("#student-groups tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		size, _ := strconv.Atoi(strings.TrimSpace(cells.Eq(1).Text()))
		input.StudentGroups = append(input.StudentGroups, catalog.StudentGroup{
			Name:     strings.TrimSpace(cells.Eq(0).Text()),
			Size:     size,
			Subjects: splitCSVCell(cells.Eq(2).Text()),
		})
	})

	doc.Find("#teachers tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		input.Teachers = append(input.Teachers, catalog.Teacher{
			Name:     strings.TrimSpace(cells.Eq(0).Text()),
			CanTeach: splitCSVCell(cells.Eq(1).Text()),
		})
	})

	doc.Find("#classrooms tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		capacity, _ := strconv.Atoi(strings.TrimSpace(cells.Eq(1).Text()))
		input.Classrooms = append(input.Classrooms, catalog.Classroom{
			Name:     strings.TrimSpace(cells.Eq(0).Text()),
			Capacity: capacity,
		})
	})

	doc.Find("#subjects tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		count, _ := strconv.Atoi(strings.TrimSpace(cells.Eq(2).Text()))
		input.Subjects = append(input.Subjects, catalog.Subject{
			Name:        strings.TrimSpace(cells.Eq(0).Text()),
			SubjectType: catalog.SubjectType(strings.TrimSpace(cells.Eq(1).Text())),
			Count:       count,
		})
	})

	if days, err := strconv.Atoi(strings.TrimSpace(doc.Find("#meta-days").Text())); err == nil {
		input.Days = uint8(days)
	}

	if len(input.StudentGroups) == 0 {
		return catalog.PlanInput{}, fmt.Errorf("no student groups found in catalog page")
	}

	return input, nil
}

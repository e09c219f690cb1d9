package infrastructure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/extrame/xls"

	"github.com/campusplan/timetable-planner/internal/catalog"
)

// XLSCatalogRepository reads a PlanInput out of a legacy XLS workbook —
// the format this department already had its course catalogs in before
// a planner existed. Expected layout, one sheet per resource kind, each
// with a header row followed by data rows:
//
//	Sheet 0 "StudentGroups": name | size | subjects (comma-separated)
//	Sheet 1 "Teachers":      name | can_teach (comma-separated)
//	Sheet 2 "Classrooms":    name | capacity
//	Sheet 3 "Subjects":      name | subject_type | count
//	Sheet 4 "Meta":          days
type XLSCatalogRepository struct {
	filename string
	charset  string
}

// NewXLSCatalogRepository wraps filename. charset matches the encoding
// the workbook was saved with — "windows-1251" for Cyrillic exports.
func NewXLSCatalogRepository(filename, charset string) *XLSCatalogRepository {
	return &XLSCatalogRepository{filename: filename, charset: charset}
}

// LoadCatalog opens the workbook and reads all five sheets.
func (r *XLSCatalogRepository) LoadCatalog() (catalog.PlanInput, error) {
	workbook, err := xls.Open(r.filename, r.charset)
	if err != nil {
		return catalog.PlanInput{}, fmt.Errorf("opening XLS catalog: %w", err)
	}

	groups, err := readStudentGroupsSheet(workbook.GetSheet(0))
	if err != nil {
		return catalog.PlanInput{}, fmt.Errorf("reading student groups sheet: %w", err)
	}
	teachers, err := readTeachersSheet(workbook.GetSheet(1))
	if err != nil {
		return catalog.PlanInput{}, fmt.Errorf("reading teachers sheet: %w", err)
	}
	classrooms, err := readClassroomsSheet(workbook.GetSheet(2))
	if err != nil {
		return catalog.PlanInput{}, fmt.Errorf("reading classrooms sheet: %w", err)
	}
	subjects, err := readSubjectsSheet(workbook.GetSheet(3))
	if err != nil {
		return catalog.PlanInput{}, fmt.Errorf("reading subjects sheet: %w", err)
	}
	days, err := readMetaSheet(workbook.GetSheet(4))
	if err != nil {
		return catalog.PlanInput{}, fmt.Errorf("reading meta sheet: %w", err)
	}

	return catalog.PlanInput{
		StudentGroups: groups,
		Teachers:      teachers,
		Classrooms:    classrooms,
		Subjects:      subjects,
		Days:          days,
	}, nil
}

func splitCSVCell(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func readStudentGroupsSheet(sheet *xls.WorkSheet) ([]catalog.StudentGroup, error) {
	if sheet == nil {
		return nil, fmt.Errorf("sheet not found")
	}
	var groups []catalog.StudentGroup
	for row := 1; row <= int(sheet.MaxRow); row++ {
		name := strings.TrimSpace(sheet.Row(row).Col(0))
		if name == "" {
			continue
		}
		size, err := strconv.Atoi(strings.TrimSpace(sheet.Row(row).Col(1)))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid size: %w", row, err)
		}
		groups = append(groups, catalog.StudentGroup{
			Name:     name,
			Size:     size,
			Subjects: splitCSVCell(sheet.Row(row).Col(2)),
		})
	}
	return groups, nil
}

func readTeachersSheet(sheet *xls.WorkSheet) ([]catalog.Teacher, error) {
	if sheet == nil {
		return nil, fmt.Errorf("sheet not found")
	}
	var teachers []catalog.Teacher
	for row := 1; row <= int(sheet.MaxRow); row++ {
		name := strings.TrimSpace(sheet.Row(row).Col(0))
		if name == "" {
			continue
		}
		teachers = append(teachers, catalog.Teacher{
			Name:     name,
			CanTeach: splitCSVCell(sheet.Row(row).Col(1)),
		})
	}
	return teachers, nil
}

func readClassroomsSheet(sheet *xls.WorkSheet) ([]catalog.Classroom, error) {
	if sheet == nil {
		return nil, fmt.Errorf("sheet not found")
	}
	var classrooms []catalog.Classroom
	for row := 1; row <= int(sheet.MaxRow); row++ {
		name := strings.TrimSpace(sheet.Row(row).Col(0))
		if name == "" {
			continue
		}
		capacity, err := strconv.Atoi(strings.TrimSpace(sheet.Row(row).Col(1)))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid capacity: %w", row, err)
		}
		classrooms = append(classrooms, catalog.Classroom{Name: name, Capacity: capacity})
	}
	return classrooms, nil
}

func readSubjectsSheet(sheet *xls.WorkSheet) ([]catalog.Subject, error) {
	if sheet == nil {
		return nil, fmt.Errorf("sheet not found")
	}
	var subjects []catalog.Subject
	for row := 1; row <= int(sheet.MaxRow); row++ {
		name := strings.TrimSpace(sheet.Row(row).Col(0))
		if name == "" {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(sheet.Row(row).Col(2)))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid count: %w", row, err)
		}
		subjects = append(subjects, catalog.Subject{
			Name:        name,
			SubjectType: catalog.SubjectType(strings.TrimSpace(sheet.Row(row).Col(1))),
			Count:       count,
		})
	}
	return subjects, nil
}

func readMetaSheet(sheet *xls.WorkSheet) (uint8, error) {
	if sheet == nil {
		return 0, fmt.Errorf("sheet not found")
	}
	days, err := strconv.Atoi(strings.TrimSpace(sheet.Row(1).Col(0)))
	if err != nil {
		return 0, fmt.Errorf("invalid days cell: %w", err)
	}
	return uint8(days), nil
}

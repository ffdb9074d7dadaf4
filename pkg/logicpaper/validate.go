package logicpaper

import (
	"sort"
	"strings"
)

// TemplateStatus is the per-template validation outcome.
type TemplateStatus string

const (
	StatusOK          TemplateStatus = "OK"
	StatusMissingData TemplateStatus = "MissingData"
)

// TemplateReport describes how one template's required variables line up
// against the available data columns.
type TemplateReport struct {
	Template    string         `json:"template"`
	Status      TemplateStatus `json:"status"`
	MissingVars []string       `json:"missingVars"`
	MatchedVars []string       `json:"matchedVars"`
}

// ValidationReport is the compatibility report for a set of templates,
// consumed by the surrounding web layer before a batch run.
type ValidationReport struct {
	OverallValid bool             `json:"overallValid"`
	Details      []TemplateReport `json:"details"`
}

// Compare extracts the required variables of each template file and diffs
// them against the available column names. Template names are compared in
// sorted order so reports are deterministic. A template that cannot be read
// contributes an empty requirement set and a logged error, matching the
// fail-open posture of the rest of the core.
func Compare(availableColumns []string, templates map[string]string) ValidationReport {
	required := make(map[string]map[string]bool, len(templates))
	for name, path := range templates {
		vars, err := ExtractTemplateVars(path)
		if err != nil {
			GetLogger().WithField("template", name).Error("extraction failed: %v", err)
			vars = make(map[string]bool)
		}
		required[name] = vars
	}
	return CompareRequired(availableColumns, required)
}

// CompareRequired diffs pre-extracted requirement sets against the available
// column names. Column names match on exact string equality after trimming.
func CompareRequired(availableColumns []string, required map[string]map[string]bool) ValidationReport {
	available := make(map[string]bool, len(availableColumns))
	for _, col := range availableColumns {
		available[strings.TrimSpace(col)] = true
	}

	names := make([]string, 0, len(required))
	for name := range required {
		names = append(names, name)
	}
	sort.Strings(names)

	report := ValidationReport{OverallValid: true}
	for _, name := range names {
		missing := make(map[string]bool)
		matched := make(map[string]bool)
		for v := range required[name] {
			if available[v] {
				matched[v] = true
			} else {
				missing[v] = true
			}
		}

		status := StatusOK
		if len(missing) > 0 {
			status = StatusMissingData
			report.OverallValid = false
		}

		report.Details = append(report.Details, TemplateReport{
			Template:    name,
			Status:      status,
			MissingVars: sortedVars(missing),
			MatchedVars: sortedVars(matched),
		})
	}
	return report
}

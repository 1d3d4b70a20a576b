package report

import (
	"encoding/json"
	"fmt"

	"github.com/hdl-tools/sv-lint/internal/issues"
)

// Document is the machine-readable form of a run, emitted by --format json.
type Document struct {
	FilesChecked    int            `json:"files_checked"`
	TotalIssues     int            `json:"total_issues"`
	FilesWithIssues int            `json:"files_with_issues"`
	Clean           bool           `json:"clean"`
	Categories      []CategoryJSON `json:"categories"`
}

type CategoryJSON struct {
	Name   string      `json:"name"`
	Issues []IssueJSON `json:"issues"`
}

type IssueJSON struct {
	Title    string   `json:"title"`
	Solution string   `json:"solution"`
	Findings []string `json:"findings"`
}

// BuildDocument assembles the JSON document from a finished store. Categories
// appear in report order; empty categories are omitted, matching the Markdown
// renderer.
func BuildDocument(store *issues.Store, files []string) Document {
	doc := Document{
		FilesChecked:    len(files),
		TotalIssues:     store.TotalIssues(),
		FilesWithIssues: countFilesWithIssues(store),
		Clean:           !store.Fail(),
	}
	for _, cat := range issues.Categories {
		iss := store.Issues(cat)
		if len(iss) == 0 {
			continue
		}
		cj := CategoryJSON{Name: cat.String()}
		for _, issue := range iss {
			cj.Issues = append(cj.Issues, IssueJSON{
				Title:    issue.Title,
				Solution: issue.Solution,
				Findings: issue.ContentLines(),
			})
		}
		doc.Categories = append(doc.Categories, cj)
	}
	return doc
}

// RenderJSON marshals the document with indentation and a trailing newline.
func RenderJSON(store *issues.Store, files []string) ([]byte, error) {
	data, err := json.MarshalIndent(BuildDocument(store, files), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return append(data, '\n'), nil
}

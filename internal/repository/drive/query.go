package drive

import (
	"fmt"
	"strings"

	"drivenotes/internal/domain/models"
	"drivenotes/internal/domain/repositories"
)

// escapeQueryValue escapes a literal for the provider's query language.
// Backslashes and single quotes would otherwise terminate the string term.
func escapeQueryValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return v
}

// buildQuery renders a repositories.Query into the provider's q syntax.
// Trashed items are always excluded.
func buildQuery(q repositories.Query) string {
	terms := make([]string, 0, 4)

	if q.ParentID != "" {
		terms = append(terms, fmt.Sprintf("'%s' in parents", escapeQueryValue(q.ParentID)))
	}
	if q.Name != "" {
		terms = append(terms, fmt.Sprintf("name = '%s'", escapeQueryValue(q.Name)))
	}
	switch {
	case q.FoldersOnly:
		terms = append(terms, fmt.Sprintf("mimeType = '%s'", models.MimeFolder))
	case q.MimeType != "":
		terms = append(terms, fmt.Sprintf("mimeType = '%s'", escapeQueryValue(q.MimeType)))
	case q.MimePrefix != "":
		terms = append(terms, fmt.Sprintf("mimeType contains '%s'", escapeQueryValue(q.MimePrefix)))
	}
	terms = append(terms, "trashed = false")

	return strings.Join(terms, " and ")
}

// Package utm builds and validates campaign-tracking URLs from grid rows.
package utm

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/itsblakeyeon/smart-utm-builder/internal/model"
)

// param maps a schema field to its utm_* query parameter. Base URL carries
// no parameter of its own.
var params = []struct {
	field model.Field
	key   string
}{
	{model.FieldSource, "utm_source"},
	{model.FieldMedium, "utm_medium"},
	{model.FieldCampaign, "utm_campaign"},
	{model.FieldTerm, "utm_term"},
	{model.FieldContent, "utm_content"},
}

// required fields for a usable campaign link. Term and content are
// optional by convention.
var required = []model.Field{
	model.FieldBaseURL,
	model.FieldSource,
	model.FieldMedium,
	model.FieldCampaign,
}

// BuildURL assembles the campaign link for one row: base URL plus the
// non-empty utm_* parameters, percent-encoded, preserving any query string
// already on the base URL. An empty or unparsable base URL yields "".
func BuildURL(row model.Row) string {
	base := strings.TrimSpace(row.Get(model.FieldBaseURL))
	if base == "" {
		return ""
	}
	u, err := url.Parse(base)
	if err != nil {
		return ""
	}
	q := u.Query()
	for _, p := range params {
		v := strings.TrimSpace(row.Get(p.field))
		if v == "" {
			continue
		}
		q.Set(p.key, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Issue describes one validation finding for a row.
type Issue struct {
	Field model.Field
	Msg   string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", model.FieldLabels[i.Field], i.Msg)
}

// Validate reports the missing required fields and an unparsable base URL.
// An entirely blank row reports nothing: blank rows are scratch space, not
// mistakes.
func Validate(row model.Row) []Issue {
	blank := true
	for _, f := range model.Schema {
		if strings.TrimSpace(row.Get(f)) != "" {
			blank = false
			break
		}
	}
	if blank {
		return nil
	}

	var issues []Issue
	for _, f := range required {
		if strings.TrimSpace(row.Get(f)) == "" {
			issues = append(issues, Issue{Field: f, Msg: "required"})
		}
	}
	base := strings.TrimSpace(row.Get(model.FieldBaseURL))
	if base != "" {
		u, err := url.Parse(base)
		if err != nil || u.Scheme == "" || u.Host == "" {
			issues = append(issues, Issue{Field: model.FieldBaseURL, Msg: "not an absolute URL"})
		}
	}
	return issues
}

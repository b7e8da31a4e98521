// Package normalize maps loosely-typed project records, as editors store them in
// the portfolio database, into models.Project.
package normalize

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/yoockh/folio/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Candidate keys per canonical field, in lookup order.
var (
	titleKeys       = []string{"title", "name", "project_title"}
	categoryKeys    = []string{"category", "type", "tag"}
	descriptionKeys = []string{"description", "desc", "about"}
	technologyKeys  = []string{"technologies", "tech", "tech_stack"}
	imageKeys       = []string{"image", "img", "thumbnail", "image_url"}
	githubKeys      = []string{"github_url", "github", "repo"}
	liveKeys        = []string{"live_url", "live", "demo", "demo_url"}
)

const defaultCategory = "Other"

// Projects normalizes items in order. Items that are not records are skipped.
func Projects(items []any) []models.Project {
	out := make([]models.Project, 0, len(items))
	for _, item := range items {
		rec, ok := AsRecord(item)
		if !ok {
			continue
		}
		out = append(out, Project(rec))
	}
	return out
}

// Project resolves every canonical field of a single record.
func Project(rec map[string]any) models.Project {
	category := text(first(rec, categoryKeys))
	if category == "" {
		category = defaultCategory
	}
	return models.Project{
		ID:           ID(rec["_id"]),
		Title:        text(first(rec, titleKeys)),
		Category:     category,
		Description:  text(first(rec, descriptionKeys)),
		Technologies: Technologies(first(rec, technologyKeys)),
		Image:        ImagePath(text(first(rec, imageKeys))),
		GithubURL:    text(first(rec, githubKeys)),
		LiveURL:      text(first(rec, liveKeys)),
	}
}

// AsRecord returns v as a string-keyed map when it is one of the record shapes the
// driver or a JSON decoder produces.
func AsRecord(v any) (map[string]any, bool) {
	switch r := v.(type) {
	case bson.M:
		return r, true
	case map[string]any:
		return r, true
	case bson.D:
		m := make(map[string]any, len(r))
		for _, e := range r {
			m[e.Key] = e.Value
		}
		return m, true
	}
	return nil, false
}

// AsList returns v as a slice when it is a sequence of any element type.
func AsList(v any) ([]any, bool) {
	switch l := v.(type) {
	case bson.A:
		return l, true
	case []any:
		return l, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Technologies accepts a sequence or a comma separated string. Items are trimmed,
// empty and non-string items are dropped. Other inputs give an empty slice.
func Technologies(v any) []string {
	var raw []string
	if s, ok := v.(string); ok {
		raw = strings.Split(s, ",")
	} else if list, ok := AsList(v); ok {
		for _, item := range list {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ImagePath makes an image reference relative to the static root:
// "C:\site\static\images\a.jpg" and "/static/images/a.jpg" both give "images/a.jpg".
func ImagePath(p string) string {
	if p == "" {
		return ""
	}
	p = strings.ReplaceAll(p, `\`, "/")
	if _, after, found := strings.Cut(p, "static/"); found {
		p = after
	}
	return strings.TrimLeft(p, "/")
}

// ID renders an identifier as a string; native ObjectIDs become their hex form.
func ID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		if id.IsZero() {
			return ""
		}
		return id.Hex()
	case string:
		return id
	}
	return fmt.Sprint(v)
}

// first returns the value of the first key holding a truthy value.
func first(rec map[string]any, keys []string) any {
	for _, k := range keys {
		if v, ok := rec[k]; ok && Truthy(v) {
			return v
		}
	}
	return nil
}

// Truthy reports whether v counts as "given": not nil, not an empty string or
// collection, not zero, not false.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case primitive.ObjectID:
		return !t.IsZero()
	case primitive.Null, primitive.Undefined:
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	}
	return fmt.Sprint(v)
}

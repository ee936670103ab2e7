package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/skinkit/internal/coerce"
	"github.com/alexisbeaulieu97/skinkit/internal/color"
	"github.com/alexisbeaulieu97/skinkit/internal/condition"
	skinerrors "github.com/alexisbeaulieu97/skinkit/pkg/errors"
)

// Structural error messages.
const (
	MsgEmptyPayload    = "JSON payload is empty."
	MsgUnsupportedRoot = `Unsupported theme document: expected a theme object, {"theme":{...}}, {"themes":[...]}, or an array of themes.`
)

var (
	errMissingThemeID = errors.New(`missing required field "id"`)
	errThemeNotObject = errors.New("theme entry must be an object")
)

// Result is the outcome of parsing a theme document.
type Result struct {
	Themes   []ThemeDef `json:"themes"`
	Errors   []string   `json:"errors"`
	Warnings []string   `json:"warnings"`
	IsValid  bool       `json:"isValid"`

	errs []error
}

// Err joins the structural and per-theme errors, or returns nil.
func (r Result) Err() error {
	return errors.Join(r.errs...)
}

// Theme returns the theme with id.
func (r Result) Theme(id string) (ThemeDef, bool) {
	for _, def := range r.Themes {
		if def.ID == id {
			return def, true
		}
	}
	return ThemeDef{}, false
}

// IDs returns theme ids in document order.
func (r Result) IDs() []string {
	ids := make([]string, 0, len(r.Themes))
	for _, def := range r.Themes {
		ids = append(ids, def.ID)
	}
	return ids
}

func (r *Result) fail(err error) {
	r.errs = append(r.errs, err)
	r.Errors = append(r.Errors, err.Error())
}

// Parser decodes theme documents. The zero value uses the built-in dynamic color table.
type Parser struct {
	resolver *color.Resolver
}

// NewParser returns a Parser resolving colors with resolver. A nil resolver
// uses the built-in dynamic color table.
func NewParser(resolver *color.Resolver) *Parser {
	if resolver == nil {
		resolver = color.DefaultResolver()
	}
	return &Parser{resolver: resolver}
}

// Parse decodes data with the built-in dynamic color table.
func Parse(data []byte) Result {
	return NewParser(nil).Parse(data)
}

// ParseString decodes a theme document held in a string.
func ParseString(text string) Result {
	return Parse([]byte(text))
}

// Parse decodes a single theme object, {"theme": {...}}, {"themes": [...]}
// or a bare array of themes. It never panics and never returns an error;
// problems are reported in the Result.
func (p *Parser) Parse(data []byte) Result {
	result := Result{Themes: []ThemeDef{}, Errors: []string{}, Warnings: []string{}}

	if strings.TrimSpace(string(data)) == "" {
		result.fail(skinerrors.NewParseError("", 0, errors.New(MsgEmptyPayload)))
		return result
	}

	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		result.fail(&skinerrors.ParseError{Message: "Invalid JSON: " + err.Error(), Err: err})
		return result
	}

	candidates, ok := collectCandidates(root)
	if !ok {
		result.fail(skinerrors.NewParseError("", 0, errors.New(MsgUnsupportedRoot)))
		return result
	}

	seen := make(map[string]struct{}, len(candidates))
	for i, candidate := range candidates {
		index := i + 1
		raw := coerce.AsMap(candidate)
		if raw == nil {
			result.fail(skinerrors.NewThemeError(index, errThemeNotObject.Error(), errThemeNotObject))
			continue
		}

		var warnings []string
		sc := newScope(index, p.resolver, &warnings)
		def, err := parseTheme(raw, sc)
		if err != nil {
			result.fail(skinerrors.NewThemeError(index, err.Error(), err))
			continue
		}
		if _, dup := seen[def.ID]; dup {
			msg := fmt.Sprintf("duplicate theme id %q", def.ID)
			result.fail(skinerrors.NewThemeError(index, msg, nil))
			continue
		}
		seen[def.ID] = struct{}{}
		result.Themes = append(result.Themes, def)
		result.Warnings = append(result.Warnings, warnings...)
	}

	result.IsValid = len(result.errs) == 0 && len(result.Themes) > 0
	return result
}

func collectCandidates(root any) ([]any, bool) {
	if list := coerce.AsList(root); list != nil {
		return list, true
	}
	m := coerce.AsMap(root)
	if m == nil {
		return nil, false
	}
	if themes, ok := m["themes"]; ok && themes != nil {
		if list := coerce.AsList(themes); list != nil {
			return list, true
		}
		if coerce.AsMap(themes) != nil {
			return []any{themes}, true
		}
		return nil, false
	}
	if theme := coerce.AsMap(m["theme"]); theme != nil {
		return []any{theme}, true
	}
	if _, ok := m["id"]; ok {
		return []any{m}, true
	}
	return nil, false
}

// scope tracks where in a theme the parser is, for warning messages.
type scope struct {
	label   string
	path    string
	sink    *[]string
	cascade Cascade
}

func newScope(index int, resolver *color.Resolver, sink *[]string) scope {
	sc := scope{label: "Theme #" + strconv.Itoa(index), sink: sink}
	sc.cascade = Cascade{Resolver: resolver}
	sc.cascade.Warn = sc.warn
	return sc
}

func (s scope) named(id string) scope {
	s.label = fmt.Sprintf("%s (%s)", s.label, id)
	s.cascade.Warn = s.warn
	return s
}

func (s scope) child(name string) scope {
	if s.path == "" {
		s.path = name
	} else {
		s.path = s.path + "." + name
	}
	s.cascade.Warn = s.warn
	return s
}

func (s scope) index(i int) scope {
	s.path = fmt.Sprintf("%s[%d]", s.path, i)
	s.cascade.Warn = s.warn
	return s
}

func (s scope) warn(msg string) {
	if s.sink == nil {
		return
	}
	var b strings.Builder
	b.WriteString(s.label)
	b.WriteString(": ")
	if s.path != "" {
		b.WriteString(s.path)
		b.WriteString(": ")
	}
	b.WriteString(msg)
	*s.sink = append(*s.sink, b.String())
}

func (s scope) warnf(format string, args ...any) {
	s.warn(fmt.Sprintf(format, args...))
}

func (s scope) checkCondition(field, expr string) {
	for _, name := range condition.Unknown(expr) {
		s.warnf("%s: unknown condition atom %q", field, name)
	}
}

func (s scope) checkColors(field string, m map[string]any) {
	if len(m) == 0 {
		return
	}
	s.cascade.CheckColors(field, m)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

package htmldom

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/anchorlayout/core/dimen"
)

// inlineStyle is the parsed content of an element's 'style' attribute.
// Declaration order is preserved for serialization.
type inlineStyle struct {
	raw   string
	decls []*css.Declaration
}

func parseInlineStyle(raw string) *inlineStyle {
	st := &inlineStyle{raw: raw}
	if strings.TrimSpace(raw) == "" {
		return st
	}
	// douceur drops the value of a declaration not terminated by ';'
	src := strings.TrimSpace(raw)
	if !strings.HasSuffix(src, ";") {
		src += ";"
	}
	decls, err := parser.ParseDeclarations(src)
	if err != nil {
		tracer().Errorf("cannot parse inline style %q: %v", raw, err)
	}
	st.decls = decls
	return st
}

// get returns the value of a property. Later declarations take precedence.
func (st *inlineStyle) get(prop string) (string, bool) {
	for i := len(st.decls) - 1; i >= 0; i-- {
		if strings.EqualFold(st.decls[i].Property, prop) {
			return strings.TrimSpace(st.decls[i].Value), true
		}
	}
	return "", false
}

// set sets a property. It returns false if the property already had this
// value, in which case the style is left untouched.
func (st *inlineStyle) set(prop, value string) bool {
	if v, ok := st.get(prop); ok && v == value {
		return false
	}
	found := false
	for _, d := range st.decls {
		if strings.EqualFold(d.Property, prop) {
			d.Value = value
			found = true
		}
	}
	if !found {
		d := css.NewDeclaration()
		d.Property = prop
		d.Value = value
		st.decls = append(st.decls, d)
	}
	st.raw = st.String()
	return true
}

func (st *inlineStyle) String() string {
	var b strings.Builder
	for i, d := range st.decls {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.String())
	}
	return b.String()
}

// dimension returns a property as a pixel value. Missing, 'auto' or
// malformed values yield 0.
func (st *inlineStyle) dimension(prop string) dimen.Dimen {
	v, ok := st.get(prop)
	if !ok || v == "auto" {
		return 0
	}
	d, err := dimen.ParseDimen(v)
	if err != nil {
		tracer().Debugf("style property %s: cannot use value %q", prop, v)
		return 0
	}
	return d
}

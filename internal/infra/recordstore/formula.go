package recordstore

import (
	"strings"
)

// Formula is a boolean predicate over named fields. Backends render it natively;
// Match evaluates it against fields already in memory.
type Formula interface {
	Airtable() string
	Match(fields Fields) bool
}

// EqFormula matches when the field's text value equals Value
type EqFormula struct {
	Field string
	Value string
}

// ContainsFormula matches when Value is a case-sensitive substring of the field's text value
type ContainsFormula struct {
	Field string
	Value string
}

// HasFormula matches when a list field contains Value as one of its elements
type HasFormula struct {
	Field string
	Value string
}

type AndFormula struct {
	Terms []Formula
}

func Eq(field, value string) EqFormula             { return EqFormula{Field: field, Value: value} }
func Contains(field, value string) ContainsFormula { return ContainsFormula{Field: field, Value: value} }
func Has(field, value string) HasFormula           { return HasFormula{Field: field, Value: value} }
func And(terms ...Formula) AndFormula              { return AndFormula{Terms: terms} }

func (f EqFormula) Airtable() string {
	return fieldRef(f.Field) + "=" + quote(f.Value)
}

func (f EqFormula) Match(fields Fields) bool {
	return Text(fields, f.Field) == f.Value
}

func (f ContainsFormula) Airtable() string {
	return "FIND(" + quote(f.Value) + "," + fieldRef(f.Field) + ")>0"
}

func (f ContainsFormula) Match(fields Fields) bool {
	return strings.Contains(Text(fields, f.Field), f.Value)
}

func (f HasFormula) Airtable() string {
	return "FIND(" + quote(f.Value) + ",ARRAYJOIN(" + fieldRef(f.Field) + "))>0"
}

func (f HasFormula) Match(fields Fields) bool {
	for _, v := range Strings(fields, f.Field) {
		if v == f.Value {
			return true
		}
	}
	return false
}

func (f AndFormula) Airtable() string {
	if len(f.Terms) == 1 {
		return f.Terms[0].Airtable()
	}
	parts := make([]string, 0, len(f.Terms))
	for _, t := range f.Terms {
		parts = append(parts, t.Airtable())
	}
	return "AND(" + strings.Join(parts, ",") + ")"
}

func (f AndFormula) Match(fields Fields) bool {
	for _, t := range f.Terms {
		if !t.Match(fields) {
			return false
		}
	}
	return true
}

func fieldRef(name string) string {
	return "{" + name + "}"
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quote(v string) string {
	return "'" + quoteReplacer.Replace(v) + "'"
}

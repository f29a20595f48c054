package flags

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// EnumSet is a repeatable flag value accepting a set of known values.
// Values match case-insensitively and are stored in their canonical form,
// ordered as the known values are.
type EnumSet struct {
	values *[]string
	valid  []string
}

// NewEnumSet creates an EnumSet writing its values to p
func NewEnumSet(p *[]string, valid []string) *EnumSet {
	*p = nil
	return &EnumSet{values: p, valid: valid}
}

// Type returns the EnumSet flag type
func (es *EnumSet) Type() string {
	return "enumSet"
}

func (es *EnumSet) String() string {
	return "[" + strings.Join(*es.values, ",") + "]"
}

// Set adds the comma-separated values to the EnumSet
func (es *EnumSet) Set(val string) error {
	if val == "" {
		return nil
	}

	values, err := csv.NewReader(strings.NewReader(val)).Read()
	if err != nil {
		return err
	}

	selected := make(map[string]bool, len(*es.values)+len(values))
	for _, value := range *es.values {
		selected[value] = true
	}

	for _, value := range values {
		canonical, ok := es.canonical(strings.TrimSpace(value))
		if !ok {
			return fmt.Errorf(`unsupported value, use one of ["%s"] instead`, strings.Join(es.valid, `", "`))
		}
		selected[canonical] = true
	}

	ordered := make([]string, 0, len(selected))
	for _, value := range es.valid {
		if selected[value] {
			ordered = append(ordered, value)
		}
	}
	*es.values = ordered
	return nil
}

// Contains reports whether the value was selected, or whether nothing was
func (es *EnumSet) Contains(value string) bool {
	if len(*es.values) == 0 {
		return true
	}
	for _, v := range *es.values {
		if v == value {
			return true
		}
	}
	return false
}

func (es *EnumSet) canonical(value string) (string, bool) {
	for _, valid := range es.valid {
		if strings.EqualFold(valid, value) {
			return valid, true
		}
	}
	return "", false
}

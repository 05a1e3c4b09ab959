package formconfig

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// UnknownFieldPolicy controls how record keys absent from the
// configuration are treated.
type UnknownFieldPolicy int

const (
	// UnknownIgnore skips keys not declared in the configuration.
	// This is the documented default; it favors forward compatibility
	// over strictness.
	UnknownIgnore UnknownFieldPolicy = iota
	// UnknownReject reports a violation for undeclared keys.
	UnknownReject
)

var dateLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

// ValidateRecord checks a product record against a configuration. Every
// enabled-and-mandatory static field and every mandatory custom field
// must carry a non-empty value; populated values get type-specific
// checks. Violations are data, not errors.
func ValidateRecord(cfg FormConfig, rec Record, policy UnknownFieldPolicy) Result {
	var res Result

	statics := map[string]StaticFieldToggle{
		KeyBrand:      cfg.StaticFields.Brand,
		KeyMfdOn:      cfg.StaticFields.MfdOn,
		KeyBestBefore: cfg.StaticFields.BestBefore,
	}
	for _, key := range []string{KeyBrand, KeyMfdOn, KeyBestBefore} {
		t := statics[key]
		if t.Enabled && t.IsMandatory && strings.TrimSpace(rec[key]) == "" {
			res.add(key, "mandatory field is missing")
		}
	}

	for _, f := range cfg.CustomFields {
		raw := rec[f.FieldName]
		if strings.TrimSpace(raw) == "" {
			if f.IsMandatory {
				res.add(f.FieldName, "mandatory field is missing")
			}
			continue
		}
		checkValue(&res, f, raw)
	}

	if policy == UnknownReject {
		known := map[string]bool{KeyBrand: true, KeyMfdOn: true, KeyBestBefore: true}
		for _, f := range cfg.CustomFields {
			known[f.FieldName] = true
		}
		for k := range rec {
			if !known[k] {
				res.add(k, "field is not declared in the configuration")
			}
		}
	}
	return res
}

func checkValue(res *Result, f FieldDescriptor, raw string) {
	switch f.FieldType {
	case FieldNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			res.add(f.FieldName, "value is not numeric")
			return
		}
		if v := f.Validation; v != nil {
			if v.Min != nil && n < *v.Min {
				res.add(f.FieldName, fmt.Sprintf("value is below minimum %v", *v.Min))
			}
			if v.Max != nil && n > *v.Max {
				res.add(f.FieldName, fmt.Sprintf("value is above maximum %v", *v.Max))
			}
		}
	case FieldDropdown:
		for _, opt := range f.Options {
			if raw == opt {
				return
			}
		}
		res.add(f.FieldName, fmt.Sprintf("value %q is not one of the allowed options", raw))
	case FieldDate:
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, raw); err == nil {
				return
			}
		}
		res.add(f.FieldName, "value is not a valid date")
	default:
		if !f.FieldType.TextLike() {
			return
		}
		if v := f.Validation; v != nil {
			n := utf8.RuneCountInString(raw)
			if v.MinLength != nil && n < *v.MinLength {
				res.add(f.FieldName, fmt.Sprintf("value is shorter than %d characters", *v.MinLength))
			}
			if v.MaxLength != nil && n > *v.MaxLength {
				res.add(f.FieldName, fmt.Sprintf("value is longer than %d characters", *v.MaxLength))
			}
			if v.Pattern != "" {
				re, err := regexp.Compile(v.Pattern)
				if err == nil && !re.MatchString(raw) {
					res.add(f.FieldName, "value does not match the required pattern")
				}
			}
		}
	}
}

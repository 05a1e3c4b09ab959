package formconfig

import (
	"fmt"
	"regexp"
)

// Violation describes one structural or record-level problem. Path
// addresses the offending element, e.g. "customFields[2].options".
type Violation struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Result collects violations in the order they were detected.
type Result struct {
	Violations []Violation `json:"violations"`
}

// OK reports whether no violations were recorded.
func (r Result) OK() bool { return len(r.Violations) == 0 }

func (r *Result) add(path, reason string) {
	r.Violations = append(r.Violations, Violation{Path: path, Reason: reason})
}

// Validate checks the structural invariants of a configuration: name
// uniqueness, dropdown option presence, pattern syntax and bound
// ordering. Data-shape problems are reported as violations, never as
// errors. Documents arriving from direct store edits pass through here
// before they are trusted.
func Validate(cfg FormConfig) Result {
	var res Result
	seen := map[string]bool{}
	dup := map[string]bool{}
	for i, f := range cfg.CustomFields {
		path := fmt.Sprintf("customFields[%d]", i)
		if f.FieldName == "" {
			res.add(path+".fieldName", "fieldName is required")
		} else if seen[f.FieldName] {
			if !dup[f.FieldName] {
				res.add(path+".fieldName", fmt.Sprintf("duplicate fieldName %q", f.FieldName))
				dup[f.FieldName] = true
			}
		} else {
			seen[f.FieldName] = true
		}
		if !f.FieldType.Valid() {
			res.add(path+".fieldType", fmt.Sprintf("unknown fieldType %q", f.FieldType))
		}
		if f.FieldType == FieldDropdown && len(f.Options) == 0 {
			res.add(path+".options", "dropdown field requires at least one option")
		}
		if v := f.Validation; v != nil {
			if v.Pattern != "" {
				if _, err := regexp.Compile(v.Pattern); err != nil {
					res.add(path+".validation.pattern", fmt.Sprintf("invalid pattern: %v", err))
				}
			}
			if v.MinLength != nil && v.MaxLength != nil && *v.MinLength > *v.MaxLength {
				res.add(path+".validation", "minLength exceeds maxLength")
			}
			if v.Min != nil && v.Max != nil && *v.Min > *v.Max {
				res.add(path+".validation", "min exceeds max")
			}
		}
	}
	vseen := map[string]bool{}
	vdup := map[string]bool{}
	for i, v := range cfg.Variants {
		path := fmt.Sprintf("variants[%d]", i)
		if v.VariantName == "" {
			res.add(path+".variantName", "variantName is required")
		} else if vseen[v.VariantName] {
			if !vdup[v.VariantName] {
				res.add(path+".variantName", fmt.Sprintf("duplicate variantName %q", v.VariantName))
				vdup[v.VariantName] = true
			}
		} else {
			vseen[v.VariantName] = true
		}
		if !v.InputType.Valid() {
			res.add(path+".inputType", fmt.Sprintf("unknown inputType %q", v.InputType))
		}
		if v.InputType == InputDropdown && len(v.Options) == 0 {
			res.add(path+".options", "dropdown variant requires at least one option")
		}
	}
	return res
}

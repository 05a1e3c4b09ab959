package formconfig

import (
	"strings"
	"testing"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestValidateOK(t *testing.T) {
	cfg := SeedConfig()
	res := Validate(cfg)
	if !res.OK() {
		t.Fatalf("seed config should validate, got %+v", res.Violations)
	}
}

func TestValidateDuplicateFieldName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CustomFields = []FieldDescriptor{
		{FieldName: "sku", FieldType: FieldText, Order: 1},
		{FieldName: "sku", FieldType: FieldText, Order: 2},
		{FieldName: "sku", FieldType: FieldText, Order: 3},
	}
	res := Validate(cfg)
	var count int
	for _, v := range res.Violations {
		if strings.Contains(v.Reason, "duplicate fieldName") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one duplicate violation, got %d: %+v", count, res.Violations)
	}
}

func TestValidateDropdownWithoutOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CustomFields = []FieldDescriptor{{FieldName: "size", FieldType: FieldDropdown}}
	res := Validate(cfg)
	if res.OK() {
		t.Fatal("expected violation for dropdown without options")
	}
	if res.Violations[0].Path != "customFields[0].options" {
		t.Fatalf("unexpected path: %s", res.Violations[0].Path)
	}
}

func TestValidateBadPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CustomFields = []FieldDescriptor{{
		FieldName: "code", FieldType: FieldText,
		Validation: &ValidationRule{Pattern: "(["},
	}}
	if res := Validate(cfg); res.OK() {
		t.Fatal("expected violation for invalid pattern")
	}
}

func TestValidateInvertedBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CustomFields = []FieldDescriptor{
		{FieldName: "code", FieldType: FieldText, Validation: &ValidationRule{MinLength: intPtr(10), MaxLength: intPtr(2)}},
		{FieldName: "qty", FieldType: FieldNumber, Validation: &ValidationRule{Min: floatPtr(100), Max: floatPtr(1)}},
	}
	res := Validate(cfg)
	if len(res.Violations) != 2 {
		t.Fatalf("expected two violations, got %+v", res.Violations)
	}
}

func TestValidateDuplicateVariantName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variants = []VariantDescriptor{
		{VariantName: "color", InputType: InputColor},
		{VariantName: "color", InputType: InputText},
	}
	if res := Validate(cfg); len(res.Violations) != 1 {
		t.Fatalf("expected one violation, got %+v", res.Violations)
	}
}

func TestValidateUnknownTypes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CustomFields = []FieldDescriptor{{FieldName: "x", FieldType: FieldType("slider")}}
	cfg.Variants = []VariantDescriptor{{VariantName: "y", InputType: InputType("swatch")}}
	if res := Validate(cfg); len(res.Violations) != 2 {
		t.Fatalf("expected two violations, got %+v", res.Violations)
	}
}

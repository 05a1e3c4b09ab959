package formconfig

import "testing"

func quantityConfig() FormConfig {
	cfg := DefaultConfig()
	cfg.StaticFields = StaticFields{} // all disabled for these cases
	cfg.CustomFields = []FieldDescriptor{{
		FieldName: "quantity", FieldType: FieldNumber, IsMandatory: true,
		Validation: &ValidationRule{Min: floatPtr(1), Max: floatPtr(1000)},
	}}
	return cfg
}

func TestValidateRecordNumberBounds(t *testing.T) {
	cfg := quantityConfig()
	if res := ValidateRecord(cfg, Record{"quantity": "0"}, UnknownIgnore); res.OK() {
		t.Fatal("0 is below min, expected violation")
	}
	if res := ValidateRecord(cfg, Record{"quantity": "50"}, UnknownIgnore); !res.OK() {
		t.Fatalf("50 should pass, got %+v", res.Violations)
	}
	if res := ValidateRecord(cfg, Record{"quantity": "5000"}, UnknownIgnore); res.OK() {
		t.Fatal("5000 is above max, expected violation")
	}
	if res := ValidateRecord(cfg, Record{"quantity": "many"}, UnknownIgnore); res.OK() {
		t.Fatal("non-numeric value, expected violation")
	}
}

func TestValidateRecordMandatoryMissing(t *testing.T) {
	cfg := quantityConfig()
	res := ValidateRecord(cfg, Record{}, UnknownIgnore)
	if res.OK() {
		t.Fatal("missing mandatory field, expected violation")
	}
	if res.Violations[0].Path != "quantity" {
		t.Fatalf("unexpected path: %s", res.Violations[0].Path)
	}
}

func TestValidateRecordDropdownMembership(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StaticFields = StaticFields{}
	cfg.CustomFields = []FieldDescriptor{{
		FieldName: "size", FieldType: FieldDropdown, Options: []string{"S", "M", "L"},
	}}
	if res := ValidateRecord(cfg, Record{"size": "XL"}, UnknownIgnore); res.OK() {
		t.Fatal("XL is not an option, expected violation")
	}
	if res := ValidateRecord(cfg, Record{"size": "M"}, UnknownIgnore); !res.OK() {
		t.Fatalf("M should pass, got %+v", res.Violations)
	}
}

func TestValidateRecordStaticFields(t *testing.T) {
	cfg := DefaultConfig() // all three enabled and mandatory
	res := ValidateRecord(cfg, Record{}, UnknownIgnore)
	if len(res.Violations) != 3 {
		t.Fatalf("expected brand, mfdOn and bestBefore violations, got %+v", res.Violations)
	}
	ok := ValidateRecord(cfg, Record{KeyBrand: "Acme", KeyMfdOn: "2026-01-01", KeyBestBefore: "2027-01-01"}, UnknownIgnore)
	if !ok.OK() {
		t.Fatalf("expected pass, got %+v", ok.Violations)
	}
}

func TestValidateRecordTextBoundsAndPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StaticFields = StaticFields{}
	cfg.CustomFields = []FieldDescriptor{{
		FieldName: "sku", FieldType: FieldText,
		Validation: &ValidationRule{MinLength: intPtr(3), MaxLength: intPtr(8), Pattern: `^[A-Z0-9-]+$`},
	}}
	cases := map[string]bool{
		"AB":        false, // too short
		"ABCDEFGHI": false, // too long
		"ab-1":      false, // pattern
		"AB-1":      true,
	}
	for val, want := range cases {
		res := ValidateRecord(cfg, Record{"sku": val}, UnknownIgnore)
		if res.OK() != want {
			t.Fatalf("sku=%q: ok=%v want %v (%+v)", val, res.OK(), want, res.Violations)
		}
	}
}

func TestValidateRecordLengthCountsRunes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StaticFields = StaticFields{}
	cfg.CustomFields = []FieldDescriptor{{
		FieldName: "name", FieldType: FieldText,
		Validation: &ValidationRule{MinLength: intPtr(2), MaxLength: intPtr(4)},
	}}
	cases := map[string]bool{
		"héllo": false, // 5 runes, 6 bytes
		"héll":  true,  // 4 runes, 5 bytes
		"ü":     false, // 1 rune, 2 bytes
		"日本語":   true,  // 3 runes, 9 bytes
	}
	for val, want := range cases {
		res := ValidateRecord(cfg, Record{"name": val}, UnknownIgnore)
		if res.OK() != want {
			t.Fatalf("name=%q: ok=%v want %v (%+v)", val, res.OK(), want, res.Violations)
		}
	}
}

func TestValidateRecordDate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StaticFields = StaticFields{}
	cfg.CustomFields = []FieldDescriptor{{FieldName: "expiry", FieldType: FieldDate}}
	if res := ValidateRecord(cfg, Record{"expiry": "2026-02-30x"}, UnknownIgnore); res.OK() {
		t.Fatal("garbage date, expected violation")
	}
	if res := ValidateRecord(cfg, Record{"expiry": "2026-08-29"}, UnknownIgnore); !res.OK() {
		t.Fatalf("valid date rejected: %+v", res.Violations)
	}
}

func TestValidateRecordUnknownFieldPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StaticFields = StaticFields{}
	rec := Record{"surprise": "value"}
	if res := ValidateRecord(cfg, rec, UnknownIgnore); !res.OK() {
		t.Fatalf("ignore policy should pass, got %+v", res.Violations)
	}
	if res := ValidateRecord(cfg, rec, UnknownReject); res.OK() {
		t.Fatal("reject policy should flag undeclared key")
	}
}

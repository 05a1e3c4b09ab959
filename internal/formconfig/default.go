package formconfig

import "github.com/google/uuid"

// DefaultConfig returns the safe fallback served when no persisted
// global configuration exists. It is never written to the store;
// callers that mutate it must create a persisted record explicitly.
func DefaultConfig() FormConfig {
	on := StaticFieldToggle{Enabled: true, IsMandatory: true}
	return FormConfig{
		IsGlobal:     true,
		FormName:     "QR Creation Form",
		CustomFields: []FieldDescriptor{},
		Variants:     []VariantDescriptor{},
		StaticFields: StaticFields{Brand: on, MfdOn: on, BestBefore: on},
	}
}

// SeedConfig returns the known-good default installed by the seeder:
// eight product fields and three variant axes.
func SeedConfig() FormConfig {
	cfg := DefaultConfig()
	cfg.FormName = "QR Creation Form"
	cfg.Description = "Default product form for QR code creation"
	cfg.CustomFields = []FieldDescriptor{
		{ID: uuid.NewString(), FieldName: "name", FieldLabel: "Product Name", FieldType: FieldText, IsMandatory: true, Order: 1},
		{ID: uuid.NewString(), FieldName: "image", FieldLabel: "Product Image", FieldType: FieldImage, Order: 2},
		{ID: uuid.NewString(), FieldName: "sku", FieldLabel: "SKU", FieldType: FieldText, Order: 3},
		{ID: uuid.NewString(), FieldName: "batchNumber", FieldLabel: "Batch Number", FieldType: FieldText, Order: 4},
		{ID: uuid.NewString(), FieldName: "mrp", FieldLabel: "MRP", FieldType: FieldNumber, Order: 5},
		{ID: uuid.NewString(), FieldName: "manufacturer", FieldLabel: "Manufacturer", FieldType: FieldText, Order: 6},
		{ID: uuid.NewString(), FieldName: "marketer", FieldLabel: "Marketer", FieldType: FieldText, Order: 7},
		{ID: uuid.NewString(), FieldName: "quantity", FieldLabel: "Quantity", FieldType: FieldNumber, Order: 8},
	}
	cfg.Variants = []VariantDescriptor{
		{ID: uuid.NewString(), VariantName: "color", VariantLabel: "Color", InputType: InputColor, Order: 1},
		{ID: uuid.NewString(), VariantName: "size", VariantLabel: "Size", InputType: InputDropdown, Options: []string{"XS", "S", "M", "L", "XL"}, Order: 2},
		{ID: uuid.NewString(), VariantName: "model", VariantLabel: "Model", InputType: InputText, Order: 3},
	}
	return cfg
}

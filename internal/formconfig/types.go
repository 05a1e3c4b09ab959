package formconfig

import "time"

// ValidationRule holds optional per-field constraints. String-length
// bounds apply to text-like types, numeric bounds to number fields and
// Pattern is matched against the raw string value.
type ValidationRule struct {
	MinLength *int     `json:"minLength,omitempty" bson:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" bson:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty" bson:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" bson:"max,omitempty" yaml:"max,omitempty"`
	Pattern   string   `json:"pattern,omitempty" bson:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// FieldDescriptor defines one custom input of the QR creation form.
// FieldName is the data key used when a product record is built against
// the owning configuration.
type FieldDescriptor struct {
	ID          string          `json:"id" bson:"id" yaml:"id"`
	FieldName   string          `json:"fieldName" bson:"fieldName" yaml:"fieldName"`
	FieldLabel  string          `json:"fieldLabel" bson:"fieldLabel" yaml:"fieldLabel"`
	FieldType   FieldType       `json:"fieldType" bson:"fieldType" yaml:"fieldType"`
	IsMandatory bool            `json:"isMandatory" bson:"isMandatory" yaml:"isMandatory"`
	Options     []string        `json:"options,omitempty" bson:"options,omitempty" yaml:"options,omitempty"`
	Placeholder string          `json:"placeholder,omitempty" bson:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Order       int             `json:"order" bson:"order" yaml:"order"`
	Validation  *ValidationRule `json:"validation,omitempty" bson:"validation,omitempty" yaml:"validation,omitempty"`
}

// VariantDescriptor defines one repeatable product attribute axis,
// e.g. Color or Size.
type VariantDescriptor struct {
	ID           string    `json:"id" bson:"id" yaml:"id"`
	VariantName  string    `json:"variantName" bson:"variantName" yaml:"variantName"`
	VariantLabel string    `json:"variantLabel" bson:"variantLabel" yaml:"variantLabel"`
	InputType    InputType `json:"inputType" bson:"inputType" yaml:"inputType"`
	Options      []string  `json:"options,omitempty" bson:"options,omitempty" yaml:"options,omitempty"`
	Order        int       `json:"order" bson:"order" yaml:"order"`
}

// StaticFieldToggle controls one of the three fixed form fields.
// IsMandatory is meaningful only while Enabled is true.
type StaticFieldToggle struct {
	Enabled     bool `json:"enabled" bson:"enabled" yaml:"enabled"`
	IsMandatory bool `json:"isMandatory" bson:"isMandatory" yaml:"isMandatory"`
}

// StaticFields holds the toggles for the three always-present fields.
type StaticFields struct {
	Brand      StaticFieldToggle `json:"brand" bson:"brand" yaml:"brand"`
	MfdOn      StaticFieldToggle `json:"mfdOn" bson:"mfdOn" yaml:"mfdOn"`
	BestBefore StaticFieldToggle `json:"bestBefore" bson:"bestBefore" yaml:"bestBefore"`
}

// Static field record keys.
const (
	KeyBrand      = "brand"
	KeyMfdOn      = "mfdOn"
	KeyBestBefore = "bestBefore"
)

// FormConfig is the aggregate root: the single global, versioned schema
// describing the QR creation form. Descriptors are owned exclusively by
// their configuration; they have no lifecycle outside it.
type FormConfig struct {
	ID           string              `json:"id" bson:"_id,omitempty" yaml:"id,omitempty"`
	IsGlobal     bool                `json:"isGlobal" bson:"isGlobal" yaml:"isGlobal"`
	FormName     string              `json:"formName" bson:"formName" yaml:"formName"`
	Description  string              `json:"description,omitempty" bson:"description,omitempty" yaml:"description,omitempty"`
	CustomFields []FieldDescriptor   `json:"customFields" bson:"customFields" yaml:"customFields"`
	Variants     []VariantDescriptor `json:"variants" bson:"variants" yaml:"variants"`
	StaticFields StaticFields        `json:"staticFields" bson:"staticFields" yaml:"staticFields"`
	IsActive     bool                `json:"isActive" bson:"isActive" yaml:"isActive"`
	Version      int64               `json:"version" bson:"version" yaml:"version,omitempty"`
	CreatedBy    string              `json:"createdBy,omitempty" bson:"createdBy,omitempty" yaml:"createdBy,omitempty"`
	UpdatedBy    string              `json:"updatedBy,omitempty" bson:"updatedBy,omitempty" yaml:"updatedBy,omitempty"`
	CreatedAt    time.Time           `json:"createdAt" bson:"createdAt" yaml:"createdAt,omitempty"`
	UpdatedAt    time.Time           `json:"updatedAt" bson:"updatedAt" yaml:"updatedAt,omitempty"`
}

// Record is a concrete set of field-name to raw value pairs submitted
// against a configuration.
type Record map[string]string

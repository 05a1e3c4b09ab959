package schema

import "github.com/charan-kumar-kamasani/authentik/internal/formconfig"

// FormConfigInput carries the mutable fields of the global form
// configuration. Lists replace wholesale; callers needing partial
// edits read-modify-write the full list.
type FormConfigInput struct {
	FormName     string                         `json:"formName"`
	Description  string                         `json:"description,omitempty"`
	CustomFields []formconfig.FieldDescriptor   `json:"customFields"`
	Variants     []formconfig.VariantDescriptor `json:"variants"`
	StaticFields formconfig.StaticFields        `json:"staticFields"`
	// Version, when non-zero, must match the stored document or the
	// write is rejected with a conflict.
	Version int64 `json:"version,omitempty"`
}

// Config converts the input into a domain aggregate.
func (in FormConfigInput) Config() formconfig.FormConfig {
	return formconfig.FormConfig{
		IsGlobal:     true,
		FormName:     in.FormName,
		Description:  in.Description,
		CustomFields: in.CustomFields,
		Variants:     in.Variants,
		StaticFields: in.StaticFields,
		Version:      in.Version,
	}
}

// RecordInput is a product record submitted for validation.
type RecordInput struct {
	Record map[string]string `json:"record"`
}

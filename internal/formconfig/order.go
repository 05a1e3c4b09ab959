package formconfig

import "sort"

// OrderedFields returns the custom fields sorted ascending by order.
// Equal orders keep their insertion position; consuming renderers must
// honor this sequence.
func OrderedFields(cfg FormConfig) []FieldDescriptor {
	out := make([]FieldDescriptor, len(cfg.CustomFields))
	copy(out, cfg.CustomFields)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// OrderedVariants returns the variants sorted ascending by order with
// the same tie-break rule as OrderedFields.
func OrderedVariants(cfg FormConfig) []VariantDescriptor {
	out := make([]VariantDescriptor, len(cfg.Variants))
	copy(out, cfg.Variants)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

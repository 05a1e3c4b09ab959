package formconfig

// FieldType identifies the widget and validation rules of a custom field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDropdown FieldType = "dropdown"
	FieldFile     FieldType = "file"
	FieldImage    FieldType = "image"
	FieldTextarea FieldType = "textarea"
	FieldDate     FieldType = "date"
	FieldEmail    FieldType = "email"
	FieldPhone    FieldType = "phone"
)

// fieldTypes is the closed set of supported field types.
var fieldTypes = map[FieldType]struct{}{
	FieldText: {}, FieldNumber: {}, FieldDropdown: {}, FieldFile: {},
	FieldImage: {}, FieldTextarea: {}, FieldDate: {}, FieldEmail: {}, FieldPhone: {},
}

// Valid reports whether t is a member of the closed field type set.
func (t FieldType) Valid() bool {
	_, ok := fieldTypes[t]
	return ok
}

// TextLike reports whether string-length and pattern bounds apply to t.
func (t FieldType) TextLike() bool {
	switch t {
	case FieldText, FieldTextarea, FieldEmail, FieldPhone:
		return true
	}
	return false
}

// InputType identifies the widget of a variant axis.
type InputType string

const (
	InputColor    InputType = "color"
	InputText     InputType = "text"
	InputDropdown InputType = "dropdown"
)

// Valid reports whether t is a member of the closed input type set.
func (t InputType) Valid() bool {
	switch t {
	case InputColor, InputText, InputDropdown:
		return true
	}
	return false
}

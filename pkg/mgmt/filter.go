package mgmt

type (
	// A Filter holds the query parameters appended to a request.
	Filter struct {
		parameters map[string]any
	}

	// A FieldsFilter selects the fields returned by the management API.
	FieldsFilter struct {
		Filter
	}
)

// NewFieldsFilter returns an empty FieldsFilter.
func NewFieldsFilter() *FieldsFilter {
	return &FieldsFilter{}
}

// WithFields only includes (or excludes) the given comma-separated fields in the response.
func (f *FieldsFilter) WithFields(fields string, include bool) *FieldsFilter {
	f.Set("fields", fields)
	f.Set("include_fields", include)
	return f
}

// Set defines the query parameter key to the given value.
func (f *Filter) Set(key string, value any) {
	if f.parameters == nil {
		f.parameters = map[string]any{}
	}
	f.parameters[key] = value
}

// AsMap returns a copy of the filter parameters.
func (f *Filter) AsMap() map[string]any {
	m := make(map[string]any, len(f.parameters))
	for k, v := range f.parameters {
		m[k] = v
	}
	return m
}

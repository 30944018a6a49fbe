package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func codes(f *File) []string {
	var out []string
	for _, d := range Validate(f).Errors {
		out = append(out, d.Code)
	}
	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		file *File
		want []string
	}{
		{name: "nil", file: nil, want: []string{"layout_is_nil"}},
		{
			name: "missing package and type",
			file: &File{Version: "1", Entities: []Entity{{}}},
			want: []string{"missing_package", "missing_type"},
		},
		{
			name: "bad version",
			file: &File{Version: "2", Package: "p"},
			want: []string{"unsupported_version"},
		},
		{
			name: "duplicate entity and functions",
			file: &File{Version: "1", Package: "p", Entities: []Entity{{Type: "A"}, {Type: "A"}}},
			want: []string{"duplicate_entity", "duplicate_function", "duplicate_function"},
		},
		{
			name: "column problems",
			file: &File{Version: "1", Package: "p", Entities: []Entity{{
				Type: "A",
				Columns: []Column{
					{Field: "X", Ignore: true},
					{Name: "y"},
					{Field: "Z", Name: "z"},
					{Field: "W", Name: "z"},
				},
			}}},
			want: []string{"ignored_with_field", "missing_field", "duplicate_column"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codes(tt.file))
		})
	}
}

func TestValidate_Warnings(t *testing.T) {
	res := Validate(&File{Version: "1", Package: "p", Entities: []Entity{{
		Type:    "A",
		Columns: []Column{{Field: "X"}, {Field: "X", Name: "x2"}},
	}}})

	assert.False(t, res.HasErrors())
	assert.Len(t, res.Warnings, 1)
	assert.Equal(t, "field_bound_twice", res.Warnings[0].Code)

	empty := Validate(&File{Version: "1", Package: "p"})
	assert.Equal(t, "no_entities", empty.Warnings[0].Code)
}

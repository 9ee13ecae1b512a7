package models

import (
	"reflect"
	"testing"
)

func TestMetadata_Map(t *testing.T) {
	tests := []struct {
		name string
		meta *Metadata
		want map[string]interface{}
	}{
		{
			name: "nil receiver",
			meta: nil,
			want: nil,
		},
		{
			name: "all empty",
			meta: &Metadata{},
			want: nil,
		},
		{
			name: "partial",
			meta: &Metadata{Subject: "math", Grade: "8"},
			want: map[string]interface{}{"subject": "math", "grade": "8"},
		},
		{
			name: "full",
			meta: &Metadata{Subject: "math", Grade: "8", Language: "id", TargetLanguage: "en"},
			want: map[string]interface{}{
				"subject": "math", "grade": "8", "language": "id", "targetLanguage": "en",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.meta.Map()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Map() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOptionSet_ByLabel(t *testing.T) {
	set := OptionSet{
		{Label: "A", Normalized: "3"},
		{Label: "B", Normalized: "4"},
	}

	opt, ok := set.ByLabel("b")
	if !ok || opt.Normalized != "4" {
		t.Errorf("ByLabel(b) = %+v, %v", opt, ok)
	}
	if _, ok := set.ByLabel("C"); ok {
		t.Error("ByLabel(C) should miss")
	}
	if !set.HasLabel("a") {
		t.Error("HasLabel(a) = false, want true")
	}
}

func TestOptionSet_LabelsAndBodies(t *testing.T) {
	set := OptionSet{
		{Label: "A", Normalized: "3"},
		{Label: "B", Normalized: "4"},
	}
	if got := set.Labels(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("Labels() = %v", got)
	}
	if got := set.Bodies(); !reflect.DeepEqual(got, []string{"3", "4"}) {
		t.Errorf("Bodies() = %v", got)
	}
}

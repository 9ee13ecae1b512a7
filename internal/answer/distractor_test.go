package answer

import (
	"testing"
)

func TestGenerate_TrueFalse(t *testing.T) {
	set := Generate("True or False: water boils at 100C", "True")
	if len(set) != 2 {
		t.Fatalf("got %d options, want 2", len(set))
	}
	if set[0].Label != "A" || set[0].Text != "True" {
		t.Errorf("option A = %+v, want the correct answer first", set[0])
	}
	if set[1].Label != "B" || set[1].Text != "False" {
		t.Errorf("option B = %+v, want the complement", set[1])
	}
}

func TestGenerate_TrueFalseComplement(t *testing.T) {
	set := Generate("True or False: the sun is cold", "False")
	if set[1].Text != "True" {
		t.Errorf("complement of False = %q, want True", set[1].Text)
	}
}

func TestGenerate_GenericDistractors(t *testing.T) {
	set := Generate("What is the capital of Kenya?", "Nairobi")
	if len(set) != 4 {
		t.Fatalf("got %d options, want 4", len(set))
	}
	if set[0].Label != "A" || set[0].Text != "Nairobi" {
		t.Errorf("option A = %+v, want the correct answer", set[0])
	}
	wantLabels := []string{"A", "B", "C", "D"}
	wantTexts := []string{"Nairobi", "Not enough information", "None of the above", "All of the above"}
	for i, opt := range set {
		if opt.Label != wantLabels[i] || opt.Text != wantTexts[i] {
			t.Errorf("option %d = %+v, want %s: %q", i, opt, wantLabels[i], wantTexts[i])
		}
	}
}

func TestGenerate_SkipsDistractorEqualToAnswer(t *testing.T) {
	set := Generate("Which option applies?", "None of the above")
	for i, opt := range set[1:] {
		if opt.Text == "None of the above" {
			t.Errorf("distractor %d duplicates the correct answer", i+1)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate("What is the capital of Kenya?", "Nairobi")
	second := Generate("What is the capital of Kenya?", "Nairobi")
	if len(first) != len(second) {
		t.Fatalf("non-deterministic length")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("option %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

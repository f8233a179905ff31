package models

import "testing"

func TestChoiceValid(t *testing.T) {
	tests := []struct {
		name   string
		choice Choice
		want   bool
	}{
		{"next", ChoiceNext, true},
		{"change", ChoiceChange, true},
		{"quit", ChoiceQuit, true},
		{"empty", Choice(""), false},
		{"unknown token", Choice("x"), false},
		{"full word", Choice("next"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.choice.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategoriesOrderIsStable(t *testing.T) {
	want := []Category{CategoryNeutral, CategoryChuck, CategoryAll}

	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, category := range Categories() {
		if !category.Valid() {
			t.Errorf("Category %s should be valid", category)
		}
	}
	if Category("dad").Valid() {
		t.Error("Category 'dad' should not be valid")
	}
}

func TestLanguageValid(t *testing.T) {
	for _, language := range Languages() {
		if !language.Valid() {
			t.Errorf("Language %s should be valid", language)
		}
	}
	if Language("fr").Valid() {
		t.Error("Language 'fr' should not be valid")
	}
}

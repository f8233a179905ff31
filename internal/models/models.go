package models

// Choice is the normalized menu token recorded by the session.
type Choice string

const (
	ChoiceNext   Choice = "n"
	ChoiceChange Choice = "c"
	ChoiceQuit   Choice = "q"
)

func (c Choice) Valid() bool {
	switch c {
	case ChoiceNext, ChoiceChange, ChoiceQuit:
		return true
	}
	return false
}

type Category string

const (
	CategoryNeutral Category = "neutral"
	CategoryChuck   Category = "chuck"
	CategoryAll     Category = "all"
)

// Categories returns the selectable categories in menu order. The order is
// stable: selection indices map to it directly.
func Categories() []Category {
	return []Category{CategoryNeutral, CategoryChuck, CategoryAll}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryNeutral, CategoryChuck, CategoryAll:
		return true
	}
	return false
}

type Language string

const (
	LanguageEN Language = "en"
	LanguageDE Language = "de"
	LanguageES Language = "es"
)

func Languages() []Language {
	return []Language{LanguageEN, LanguageDE, LanguageES}
}

func (l Language) Valid() bool {
	switch l {
	case LanguageEN, LanguageDE, LanguageES:
		return true
	}
	return false
}

// Joke is a told joke. Category is the session category at fetch time;
// once recorded the value is never mutated.
type Joke struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

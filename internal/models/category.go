package models

// Category is one of the nine closed labels used to bucket transactions
// for reporting. The set is fixed; "Outros" is the catch-all.
type Category string

const (
	CategorySalario       Category = "Salário"
	CategoryInvestimentos Category = "Investimentos"
	CategoryAlimentacao   Category = "Alimentação"
	CategoryTransporte    Category = "Transporte"
	CategoryMoradia       Category = "Moradia"
	CategoryLazer         Category = "Lazer"
	CategorySaude         Category = "Saúde"
	CategoryEducacao      Category = "Educação"
	CategoryOutros        Category = "Outros"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategorySalario,
	CategoryInvestimentos,
	CategoryAlimentacao,
	CategoryTransporte,
	CategoryMoradia,
	CategoryLazer,
	CategorySaude,
	CategoryEducacao,
	CategoryOutros,
}

// CategoryColors maps each category to its chart color.
var CategoryColors = map[Category]string{
	CategorySalario:       "#10b981",
	CategoryInvestimentos: "#3b82f6",
	CategoryAlimentacao:   "#f59e0b",
	CategoryTransporte:    "#6366f1",
	CategoryMoradia:       "#ef4444",
	CategoryLazer:         "#ec4899",
	CategorySaude:         "#14b8a6",
	CategoryEducacao:      "#8b5cf6",
	CategoryOutros:        "#64748b",
}

// Valid reports whether the category belongs to the closed set.
func (c Category) Valid() bool {
	_, ok := CategoryColors[c]
	return ok
}

// CategoryNames returns the category labels as plain strings, useful for
// building prompts and validation messages.
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return names
}

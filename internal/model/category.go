package model

// TransactionType indicates whether money flows in or out.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known tokens.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category is a grouping for transactions. A category with an empty
// ParentID is a main category; one with ParentID set is a subcategory of
// that main category. Nesting is at most one level deep.
type Category struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Icon     string          `json:"icon"`
	Color    string          `json:"color"`
	Type     TransactionType `json:"type"`
	ParentID string          `json:"parentId,omitempty"`
}

// IsMain reports whether the category is a top-level grouping.
func (c Category) IsMain() bool {
	return c.ParentID == ""
}

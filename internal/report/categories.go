package report

import "github.com/pocketledger/pocketledger/internal/model"

// MainCategories returns the top-level categories of the given type.
func MainCategories(categories []model.Category, transactionType model.TransactionType) []model.Category {
	var mains []model.Category
	for _, c := range categories {
		if c.Type == transactionType && c.IsMain() {
			mains = append(mains, c)
		}
	}
	return mains
}

// Subcategories returns the categories nested under the given parent id.
func Subcategories(categories []model.Category, parentID string) []model.Category {
	var subs []model.Category
	for _, c := range categories {
		if c.ParentID == parentID && parentID != "" {
			subs = append(subs, c)
		}
	}
	return subs
}

// CategoryGroup pairs a main category with its subcategories for two-level
// pickers. Subcategories is empty, not nil-checked away, when a main
// category has none: it still renders as a selectable leaf.
type CategoryGroup struct {
	Main          model.Category
	Subcategories []model.Category
}

// CategoriesGroupedByMain builds the two-level category structure for the
// given type, in the order the main categories appear in the input.
func CategoriesGroupedByMain(categories []model.Category, transactionType model.TransactionType) []CategoryGroup {
	mains := MainCategories(categories, transactionType)
	groups := make([]CategoryGroup, 0, len(mains))
	for _, main := range mains {
		subs := Subcategories(categories, main.ID)
		if subs == nil {
			subs = []model.Category{}
		}
		groups = append(groups, CategoryGroup{Main: main, Subcategories: subs})
	}
	return groups
}

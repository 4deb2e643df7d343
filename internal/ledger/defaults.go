package ledger

import "github.com/pocketledger/pocketledger/internal/model"

// defaultCategories seeds a fresh ledger. Loaded collections replace these
// only when non-empty, so a first run always starts with a usable set.
func defaultCategories() []model.Category {
	return []model.Category{
		{ID: "salary", Name: "Salary", Icon: "Briefcase", Color: "#10b981", Type: model.TypeIncome},
		{ID: "freelance", Name: "Freelance", Icon: "Laptop", Color: "#06b6d4", Type: model.TypeIncome},
		{ID: "investment", Name: "Investment", Icon: "TrendingUp", Color: "#3b82f6", Type: model.TypeIncome},
		{ID: "gift", Name: "Gift", Icon: "Gift", Color: "#8b5cf6", Type: model.TypeIncome},
		{ID: "other-income", Name: "Other", Icon: "DollarSign", Color: "#14b8a6", Type: model.TypeIncome},
		{ID: "food", Name: "Food & Dining", Icon: "UtensilsCrossed", Color: "#ef4444", Type: model.TypeExpense},
		{ID: "transport", Name: "Transportation", Icon: "Car", Color: "#f97316", Type: model.TypeExpense},
		{ID: "shopping", Name: "Shopping", Icon: "ShoppingBag", Color: "#f59e0b", Type: model.TypeExpense},
		{ID: "entertainment", Name: "Entertainment", Icon: "Film", Color: "#ec4899", Type: model.TypeExpense},
		{ID: "bills", Name: "Bills & Utilities", Icon: "FileText", Color: "#ef4444", Type: model.TypeExpense},
		{ID: "healthcare", Name: "Healthcare", Icon: "Heart", Color: "#dc2626", Type: model.TypeExpense},
		{ID: "education", Name: "Education", Icon: "GraduationCap", Color: "#f97316", Type: model.TypeExpense},
		{ID: "fitness", Name: "Fitness", Icon: "Dumbbell", Color: "#f59e0b", Type: model.TypeExpense},
		{ID: "other-expense", Name: "Other", Icon: "MoreHorizontal", Color: "#6b7280", Type: model.TypeExpense},
	}
}

// defaultPaymentMethods seeds a fresh ledger.
func defaultPaymentMethods() []model.PaymentMethod {
	return []model.PaymentMethod{
		{ID: "cash", Name: "Cash", Type: model.MethodCash, Icon: "Wallet"},
		{ID: "bank1", Name: "Chase Checking", Type: model.MethodBank, Icon: "Building2"},
		{ID: "bank2", Name: "Wells Fargo Savings", Type: model.MethodBank, Icon: "Building2"},
		{ID: "credit1", Name: "Visa Credit Card", Type: model.MethodCreditCard, Icon: "CreditCard"},
	}
}

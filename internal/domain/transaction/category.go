package transaction

// CategoryTaxonomy is the fixed list of category names served to clients
// for UI population. It is advisory only: the server never checks a
// transaction's category against it, so arbitrary strings remain valid.
type CategoryTaxonomy struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

var Categories = CategoryTaxonomy{
	Income: []string{
		"Salary",
		"Bonus",
		"Investment Income",
		"Side Hustle",
		"Gifts",
		"Other Income",
	},
	Expense: []string{
		"Food & Dining",
		"Transportation",
		"Shopping",
		"Entertainment",
		"Medical",
		"Education",
		"Housing",
		"Utilities",
		"Travel",
		"Other Expenses",
	},
}

package model

// DefaultCategories returns the category forest seeded on first run.
// The debt namespace is the fixed four-direction vocabulary and should not
// be renamed; the derivation layer matches on those ids.
func DefaultCategories() AllCategories {
	return AllCategories{
		Expense: []CategoryItem{
			{ID: "food", Name: "Food & Dining", Icon: "Utensils", Color: "bg-orange-100 text-orange-600"},
			{ID: "restaurant", Name: "Restaurants", Icon: "Soup", Color: "bg-red-800 text-yellow-200", ParentID: "food"},
			{ID: "groceries", Name: "Groceries", Icon: "ShoppingCart", Color: "bg-green-100 text-green-700", ParentID: "food"},
			{ID: "transport", Name: "Transport", Icon: "Car", Color: "bg-orange-100 text-orange-600"},
			{ID: "fuel", Name: "Fuel", Icon: "Fuel", Color: "bg-red-100 text-red-600", ParentID: "transport"},
			{ID: "parking", Name: "Parking", Icon: "ParkingCircle", Color: "bg-yellow-100 text-yellow-600", ParentID: "transport"},
			{ID: "taxi", Name: "Taxi", Icon: "CarTaxiFront", Color: "bg-slate-500 text-white", ParentID: "transport"},
			{ID: "bills", Name: "Bills & Utilities", Icon: "FileText", Color: "bg-slate-700 text-white"},
			{ID: "electric_bill", Name: "Electricity", Icon: "Zap", Color: "bg-yellow-100 text-yellow-600", ParentID: "bills"},
			{ID: "water_bill", Name: "Water", Icon: "Droplets", Color: "bg-sky-100 text-sky-500", ParentID: "bills"},
			{ID: "internet_bill", Name: "Internet", Icon: "Wifi", Color: "bg-teal-100 text-teal-600", ParentID: "bills"},
			{ID: "rent", Name: "Rent", Icon: "Building", Color: "bg-slate-800 text-white", ParentID: "bills"},
			{ID: "family", Name: "Family", Icon: "Home", Color: "bg-teal-600 text-white"},
			{ID: "children", Name: "Children", Icon: "Baby", Color: "bg-slate-700 text-white", ParentID: "family"},
			{ID: "pets", Name: "Pets", Icon: "PawPrint", Color: "bg-orange-200 text-orange-700", ParentID: "family"},
			{ID: "entertainment", Name: "Entertainment", Icon: "Gamepad2", Color: "bg-sky-400 text-white"},
			{ID: "movies", Name: "Movies", Icon: "Clapperboard", Color: "bg-slate-700 text-white", ParentID: "entertainment"},
			{ID: "education", Name: "Education", Icon: "GraduationCap", Color: "bg-teal-700 text-white"},
			{ID: "health", Name: "Health", Icon: "BriefcaseMedical", Color: "bg-slate-700 text-white"},
			{ID: "pharmacy", Name: "Pharmacy", Icon: "Pill", Color: "bg-sky-500 text-red-500", ParentID: "health"},
			{ID: "shopping", Name: "Shopping", Icon: "ShoppingBasket", Color: "bg-slate-700 text-teal-400"},
			{ID: "clothes", Name: "Clothes", Icon: "Shirt", Color: "bg-yellow-400 text-blue-800", ParentID: "shopping"},
			{ID: "travel", Name: "Travel", Icon: "Plane", Color: "bg-slate-700 text-white"},
			{ID: "gifts", Name: "Gifts & Donations", Icon: "Gift", Color: "bg-teal-100 text-red-500"},
			{ID: "other_expense", Name: "Other Expenses", Icon: "Box", Color: "bg-slate-700 text-yellow-400"},
		},
		Income: []CategoryItem{
			{ID: "salary", Name: "Salary", Icon: "Banknote", Color: "bg-green-100 text-green-600"},
			{ID: "bonus", Name: "Bonus", Icon: "Gift", Color: "bg-teal-100 text-teal-600"},
			{ID: "investment", Name: "Investment", Icon: "TrendingUp", Color: "bg-indigo-100 text-indigo-600"},
			{ID: "other_income", Name: "Other", Icon: "MoreHorizontal", Color: "bg-gray-100 text-gray-600"},
		},
		Debt: []CategoryItem{
			{ID: DebtCategoryLoan, Name: "Lend", Icon: "CreditCard", Color: "bg-blue-100 text-blue-600"},
			{ID: DebtCategoryBorrow, Name: "Borrow", Icon: "Banknote", Color: "bg-red-100 text-red-600"},
			{ID: DebtCategoryCollect, Name: "Collect", Icon: "TrendingUp", Color: "bg-green-100 text-green-600"},
			{ID: DebtCategoryRepay, Name: "Repay", Icon: "Gift", Color: "bg-orange-100 text-orange-600"},
		},
	}
}

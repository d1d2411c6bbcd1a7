package template

// savingsTracker: goal tracking grid with sample goals and a notes block.
// The header row sits at row index 2, below the title and a spacer.
var savingsTracker = SpreadsheetRecipe{
	ID:        "savings-tracker",
	SheetName: "Savings Goals",
	Rows: [][]any{
		{"MoneyGate: Savings Goal Tracker", "", "", "", ""},
		{"", "", "", "", ""},
		{"Goal", "Target Amount", "Current Balance", "Monthly Contribution", "Target Date", "Progress"},
		{"Emergency Fund", "$10,000", "$2,500", "$500", "2023-12-31", "25%"},
		{"Home Down Payment", "$60,000", "$15,000", "$1,000", "2025-06-30", "25%"},
		{"Vacation", "$3,000", "$1,200", "$300", "2023-08-01", "40%"},
		{"", "", "", "", "", ""},
		{"", "", "", "", "", ""},
		{"", "", "", "", "", ""},
		{"", "", "", "", "", ""},
		{"Notes:", "", "", "", "", ""},
		{"- Set realistic monthly contribution amounts based on your budget", "", "", "", "", ""},
		{"- Consider automating your savings through recurring transfers", "", "", "", "", ""},
		{"- Review and adjust your goals quarterly", "", "", "", "", ""},
	},
	Instructions: &ExtraSheet{
		Name: "Instructions",
		Rows: [][]any{
			{"Using Your Savings Goal Tracker"},
			{""},
			{"Getting Started:"},
			{"1. Replace the sample goals with your own savings targets"},
			{"2. Update the Current Balance with your actual savings"},
			{"3. Set realistic Monthly Contribution amounts"},
			{"4. Enter your Target Date for each goal"},
			{""},
			{"Tips:"},
			{"- The Progress column calculates automatically as you update your current balance"},
			{"- Consider high-yield savings accounts for better returns"},
			{"- Review your goals monthly and adjust as needed"},
			{""},
			{"Helpful Resources:"},
			{"- Visit www.moneygate.com for more financial tools"},
			{"- Consider speaking with a financial advisor for personalized advice"},
		},
	},
}

// budgetTemplate: monthly budget with budgeted/actual columns. Difference
// cells are spreadsheet formulas so the sheet keeps computing after the
// user edits it.
var budgetTemplate = SpreadsheetRecipe{
	ID:        "budget-template",
	SheetName: "Monthly Budget",
	Rows: [][]any{
		{"MoneyGate: Monthly Budget Template", "", "", ""},
		{"", "", "", ""},
		{"INCOME", "Budgeted", "Actual", "Difference"},
		{"Primary Job", "$0.00", "$0.00", "=$C3-$B3"},
		{"Secondary Income", "$0.00", "$0.00", "=$C4-$B4"},
		{"Other Income", "$0.00", "$0.00", "=$C5-$B5"},
		{"TOTAL INCOME", "=SUM(B3:B5)", "=SUM(C3:C5)", "=$C6-$B6"},
		{"", "", "", ""},
		{"EXPENSES", "Budgeted", "Actual", "Difference"},
		{"Housing", "$0.00", "$0.00", "=$C9-$B9"},
		{"Utilities", "$0.00", "$0.00", "=$C10-$B10"},
		{"Food & Groceries", "$0.00", "$0.00", "=$C11-$B11"},
		{"Transportation", "$0.00", "$0.00", "=$C12-$B12"},
		{"Healthcare", "$0.00", "$0.00", "=$C13-$B13"},
		{"Debt Payments", "$0.00", "$0.00", "=$C14-$B14"},
		{"Savings & Investments", "$0.00", "$0.00", "=$C15-$B15"},
		{"Entertainment", "$0.00", "$0.00", "=$C16-$B16"},
		{"Personal", "$0.00", "$0.00", "=$C17-$B17"},
		{"Other", "$0.00", "$0.00", "=$C18-$B18"},
		{"TOTAL EXPENSES", "=SUM(B9:B18)", "=SUM(C9:C18)", "=$C19-$B19"},
		{"", "", "", ""},
		{"NET INCOME", "=B6-B19", "=C6-C19", "=$C21-$B21"},
	},
	Breakdown: &ExtraSheet{
		Name: "Categories",
		Rows: [][]any{
			{"Expense Categories Breakdown", "", ""},
			{"", "", ""},
			{"Housing", "Actual", "Notes"},
			{"Rent/Mortgage", "$0.00", ""},
			{"Property Tax", "$0.00", ""},
			{"Insurance", "$0.00", ""},
			{"Maintenance", "$0.00", ""},
			{"Total Housing", "=SUM(B3:B6)", ""},
		},
	},
}

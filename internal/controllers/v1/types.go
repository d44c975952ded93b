package v1

type URIID struct {
	ID string `uri:"id" binding:"required"` // ID of the resource
}

type URIExpenseID struct {
	URIID
	ExpenseID string `uri:"expenseId" binding:"required"` // ID of the expense
}

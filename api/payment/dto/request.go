package payment

// UpdateFormRequest is a partial update of the payment form. Absent fields
// are left untouched.
type UpdateFormRequest struct {
	Mode                  string  `json:"mode" binding:"omitempty,oneof=SELF TO_ACCOUNT CARD"`
	SourceAccountID       *int64  `json:"sourceAccountId" binding:"omitempty,min=1"`
	DestAccountID         *int64  `json:"destAccountId" binding:"omitempty,min=1"`
	ExternalAccountNumber *string `json:"externalAccountNumber"`
	SourceCardID          *int64  `json:"sourceCardId" binding:"omitempty,min=1"`
	MerchantName          *string `json:"merchantName"`
	Amount                *string `json:"amount" binding:"omitempty,amount"`
}

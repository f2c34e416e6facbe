package request

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	ShipAddress *string `json:"ship_address"`
	ShipCity    string  `json:"ship_city" binding:"omitempty,max=255"`
	ShipState   string  `json:"ship_state" binding:"omitempty,max=2"`
	ShipZip     *string `json:"ship_zip"`
	Notes       *string `json:"notes"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	ShipAddress *string `json:"ship_address"`
	ShipCity    *string `json:"ship_city" binding:"omitempty,max=255"`
	ShipState   *string `json:"ship_state" binding:"omitempty,max=2"`
	ShipZip     *string `json:"ship_zip"`
	Notes       *string `json:"notes"`
}

// CustomerFilterRequest represents customer filter parameters
type CustomerFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

// RecordVisitRequest represents a rep visit being recorded
type RecordVisitRequest struct {
	VisitDate string  `json:"visit_date" binding:"required"`
	Notes     *string `json:"notes"`
}

package domain

// User roles. A freshly registered user has no role until an admin grants one.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User account statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// Order / payment statuses. An order only ever moves pending -> paid.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

package service

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// PaymentServiceWrapper defines middleware composition for PaymentService.
type PaymentServiceWrapper interface {
	Wrap(PaymentService) PaymentService
}

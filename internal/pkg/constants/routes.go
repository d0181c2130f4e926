package constants

// Static route constants
const (
	APIPrefix           = "/api"
	PaymentSuccessRoute = "/payment-success"
	DocsBasePath        = "/docs/api/"
)

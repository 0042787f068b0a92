package requests

// MomoCallback carries the query parameters the gateway appends to the
// redirect URL. OrderID is the appointment id the payment was created for.
type MomoCallback struct {
	ResultCode string `json:"resultCode"`
	OrderID    string `json:"orderId"`
	Amount     string `json:"amount"`
	Message    string `json:"message"`
}

// MomoCreatePayment is the signed body sent to the gateway's create endpoint.
type MomoCreatePayment struct {
	PartnerCode string `json:"partnerCode"`
	AccessKey   string `json:"accessKey"`
	RequestID   string `json:"requestId"`
	Amount      string `json:"amount"`
	OrderID     string `json:"orderId"`
	OrderInfo   string `json:"orderInfo"`
	RedirectURL string `json:"redirectUrl"`
	IpnURL      string `json:"ipnUrl"`
	ExtraData   string `json:"extraData"`
	RequestType string `json:"requestType"`
	Signature   string `json:"signature"`
	Lang        string `json:"lang"`
}

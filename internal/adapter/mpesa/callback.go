package mpesa

// CallbackMetadataItem is one name/value pair from the provider's callback
// metadata (amount, receipt number, transaction date, phone number).
type CallbackMetadataItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value,omitempty"`
}

// STKCallback is the inner callback body delivered after a push completes or
// fails. ResultCode 0 means the customer authorized the payment.
type STKCallback struct {
	MerchantRequestID string `json:"MerchantRequestID"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
	ResultCode        int    `json:"ResultCode"`
	ResultDesc        string `json:"ResultDesc"`
	CallbackMetadata  struct {
		Item []CallbackMetadataItem `json:"Item"`
	} `json:"CallbackMetadata"`
}

// CallbackEnvelope mirrors the provider's callback payload shape.
type CallbackEnvelope struct {
	Body struct {
		STKCallback STKCallback `json:"stkCallback"`
	} `json:"Body"`
}

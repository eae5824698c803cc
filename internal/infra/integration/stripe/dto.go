package stripe

type CreateIntentInput struct {
	AmountCents  int64
	Currency     string
	ReceiptEmail string
	// LeadID travels in the intent metadata so the webhook can attribute
	// the purchase back to the funnel.
	LeadID string
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

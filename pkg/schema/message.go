package schema

type Message struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Notification is one mail for the notification service.
type Notification struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

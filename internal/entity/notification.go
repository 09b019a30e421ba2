package entity

// Notification is the event pushed to a freelancer's live sessions on hire.
type Notification struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	GigId   string `json:"gigId"`
}

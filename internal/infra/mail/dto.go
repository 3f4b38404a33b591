package mail

type FollowUpEmailData struct {
	Name          string
	Source        string
	InsuranceType string
	QuoteLink     string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	QuoteURL string
}

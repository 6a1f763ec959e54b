package response

type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

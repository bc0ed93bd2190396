package tuya

// Command is a single vendor device command, sent verbatim to the Cloud API.
// Value is a bool for switch codes and a number for level codes.
type Command struct {
	Code  string `json:"code"`
	Value any    `json:"value"`
}

// Config contains Tuya Cloud API connection settings.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

type tokenResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Msg     string `json:"msg"`
	Result  struct {
		AccessToken string `json:"access_token"`
		ExpireTime  int64  `json:"expire_time"` // seconds
	} `json:"result"`
}

type commandResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Msg     string `json:"msg"`
}

package amazonauth

// Config holds Login with Amazon OAuth configuration.
// Endpoint URLs default to the standard Amazon endpoints when empty.
type Config struct {
	ClientID     string   `env:"AMAZON_OAUTH_CLIENT_ID,required"`
	ClientSecret string   `env:"AMAZON_OAUTH_CLIENT_SECRET,required"`
	AuthURL      string   `env:"AMAZON_OAUTH_AUTH_URL" envDefault:""`
	TokenURL     string   `env:"AMAZON_OAUTH_TOKEN_URL" envDefault:""`
	ProfileURL   string   `env:"AMAZON_OAUTH_PROFILE_URL" envDefault:""`
	RedirectURL  string   `env:"AMAZON_OAUTH_REDIRECT_URL" envDefault:""`
	Scopes       []string `env:"AMAZON_OAUTH_SCOPES" envSeparator:","`
}

package contact

// Config holds the relay settings. It is read once at startup.
type Config struct {
	Sender       string `env:"GMAIL_USER"`
	ClientID     string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	RefreshToken string `env:"GOOGLE_REFRESH_TOKEN"`
	To           string `env:"CONTACT_TO"`
	ReplyTo      string `env:"REPLY_TO"`
	FromName     string `env:"CONTACT_FROM_NAME" envDefault:"Speaker Ling"`
}

// Destination is CONTACT_TO, or the sender mailbox when unset.
func (c Config) Destination() string {
	if c.To != "" {
		return c.To
	}
	return c.Sender
}

// Configured reports whether every required setting and the resolved
// destination are present.
func (c Config) Configured() bool {
	return c.Sender != "" &&
		c.ClientID != "" &&
		c.ClientSecret != "" &&
		c.RefreshToken != "" &&
		c.Destination() != ""
}

// missing lists the names of unset required settings.
func (c Config) missing() []string {
	var out []string
	for _, s := range []struct {
		name, value string
	}{
		{"GMAIL_USER", c.Sender},
		{"GOOGLE_CLIENT_ID", c.ClientID},
		{"GOOGLE_CLIENT_SECRET", c.ClientSecret},
		{"GOOGLE_REFRESH_TOKEN", c.RefreshToken},
	} {
		if s.value == "" {
			out = append(out, s.name)
		}
	}
	return out
}

package gmail

// Config holds SMTP relay settings.
type Config struct {
	Host string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port int    `env:"SMTP_PORT" envDefault:"587"`
}

const (
	defaultHost = "smtp.gmail.com"
	defaultPort = 587
)

package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP       HTTP
	Logger     Logger
	Postgres   Postgres
	JWT        JWT
	Technician Technician
	Kafka      Kafka
	Storage    Storage
	VoiceAgent VoiceAgent
	Mailer     Mailer
	Jobs       Jobs
}

type HTTP struct {
	Port         int           `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"20s"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type JWT struct {
	Secret        string        `env:"JWT_SECRET"`
	AccessTTL     time.Duration `env:"JWT_ACCESS_TTL" envDefault:"24h"`
	TechnicianTTL time.Duration `env:"JWT_TECHNICIAN_TTL" envDefault:"720h"`
	Issuer        string        `env:"JWT_ISSUER" envDefault:"zafesys-suite"`
}

type Technician struct {
	PINMaxAttempts   int           `env:"TECH_PIN_MAX_ATTEMPTS" envDefault:"5"`
	PINAttemptWindow time.Duration `env:"TECH_PIN_ATTEMPT_WINDOW" envDefault:"15m"`
}

type Kafka struct {
	Enabled                 bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers                 []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	ConsumerID              string   `env:"KAFKA_CONSUMER_ID" envDefault:"zafesys-suite"`
	EventsTopic             string   `env:"KAFKA_EVENTS_TOPIC" envDefault:"zafesys.events"`
	TechnicianLocationTopic string   `env:"KAFKA_TECHNICIAN_LOCATION_TOPIC" envDefault:"zafesys.technician-locations"`
}

type Storage struct {
	Endpoint        string        `env:"R2_ENDPOINT" envDefault:""`
	AccessKeyID     string        `env:"R2_ACCESS_KEY_ID" envDefault:""`
	SecretAccessKey string        `env:"R2_SECRET_ACCESS_KEY" envDefault:""`
	Bucket          string        `env:"R2_BUCKET" envDefault:"zafesys-installations"`
	PublicURL       string        `env:"R2_PUBLIC_URL" envDefault:""`
	UploadURLTTL    time.Duration `env:"R2_UPLOAD_URL_TTL" envDefault:"1h"`
}

type VoiceAgent struct {
	WebhookSecret string        `env:"ELEVENLABS_WEBHOOK_SECRET" envDefault:""`
	APIKey        string        `env:"ELEVENLABS_API_KEY" envDefault:""`
	BaseURL       string        `env:"ELEVENLABS_BASE_URL" envDefault:"https://api.elevenlabs.io"`
	Timeout       time.Duration `env:"ELEVENLABS_TIMEOUT" envDefault:"10s"`
	RetryAttempts int           `env:"ELEVENLABS_RETRY_ATTEMPTS" envDefault:"3"`
}

type Mailer struct {
	Host     string   `env:"MAILER_HOST" envDefault:""`
	Port     int      `env:"MAILER_PORT" envDefault:"587"`
	Login    string   `env:"MAILER_LOGIN" envDefault:""`
	Password string   `env:"MAILER_PASSWORD" envDefault:""`
	From     string   `env:"MAILER_FROM" envDefault:"no-reply@zafesys.co"`
	FromName string   `env:"MAILER_FROM_NAME" envDefault:"ZAFESYS Suite"`
	AlertsTo []string `env:"MAILER_ALERTS_TO" envSeparator:"," envDefault:""`
}

type Jobs struct {
	LowStockInterval  time.Duration `env:"JOB_LOW_STOCK_INTERVAL" envDefault:"6h"`
	LocationCleanup   time.Duration `env:"JOB_LOCATION_CLEANUP_INTERVAL" envDefault:"24h"`
	LocationRetention time.Duration `env:"LOCATION_RETENTION" envDefault:"720h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

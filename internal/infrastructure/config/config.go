package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvLocal = "local"
	AppEnvProd  = "prod"
)

// Config is read once at startup from the environment (and .env, when the
// entrypoint autoloads it).
type Config struct {
	App       AppConfig
	DynamoDB  DynamoDBConfig
	Payments  PaymentsConfig
	Reminders RemindersConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env       string `envconfig:"APP_ENV" default:"local"`
	Port      string `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DynamoDBConfig points the SDK at AWS or at a local DynamoDB.
// Local DynamoDB does not validate credentials, but the SDK requires them.
type DynamoDBConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`

	ContractsTable       string `envconfig:"CONTRACTS_TABLE" default:"contracts"`
	InvestmentsTable     string `envconfig:"INVESTMENTS_TABLE" default:"investments"`
	InstallmentsTable    string `envconfig:"INSTALLMENTS_TABLE" default:"investment_installments"`
	DepositPaymentsTable string `envconfig:"DEPOSIT_PAYMENTS_TABLE" default:"deposit_payments"`
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	GatewayMock            string `envconfig:"PAYMENT_GATEWAY_MOCK"`
	MercadoPagoMock        string `envconfig:"MERCADOPAGO_MOCK"`
	TestPayerEmail         string `envconfig:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	TestPayerUserID        string `envconfig:"MERCADOPAGO_TEST_PAYER_USER_ID"`
}

// MockEnabled accepts the same switches the deploy scripts already use
// ("1", "true", "yes", "on", "mock") on either variable.
func (p PaymentsConfig) MockEnabled() bool {
	for _, v := range []string{p.GatewayMock, p.MercadoPagoMock} {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

// Sandbox reports whether the access token belongs to a Mercado Pago test account.
func (p PaymentsConfig) Sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(p.MercadoPagoAccessToken), "TEST-")
}

type RemindersConfig struct {
	Cron       string `envconfig:"REMINDERS_CRON" default:"0 9 * * *"`
	Timezone   string `envconfig:"REMINDERS_TZ" default:"America/Sao_Paulo"`
	RunOnStart bool   `envconfig:"REMINDERS_RUN_ON_START" default:"false"`
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultWebhookBodySize    = "256KB"

	defaultTimezone            = "Europe/Paris"
	defaultDailyMissionCount   = 3
	defaultWeeklyMissionCount  = 2
	defaultMissionBatchSize    = 500
	defaultDailyMissionCron    = "0 0 * * *"
	defaultWeeklyMissionCron   = "0 0 * * 1"
	defaultBookingCompletionXP = 50
	defaultRewardSweepInterval = 5 * time.Minute
	defaultRewardSweepGrace    = 2 * time.Minute
	defaultRewardSweepBatch    = 100
	defaultCurrency            = "eur"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for booking check-in codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for booking event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Stripe configuration for payments and connected accounts
	Stripe *StripeConfig `json:"stripe" yaml:"stripe"`

	// Missions configuration for the mission assignment job
	Missions *MissionsConfig `json:"missions" yaml:"missions"`

	Gamification *GamificationConfig `json:"gamification" yaml:"gamification"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "inline" to dispatch in-process, "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// StripeConfig defines Stripe API and webhook configuration
type StripeConfig struct {
	SecretKey     string `json:"secretKey" yaml:"secretKey"`
	WebhookSecret string `json:"webhookSecret" yaml:"webhookSecret"`
	Currency      string `json:"currency" yaml:"currency"`

	// Account onboarding links redirect here when they expire or complete
	OnboardingRefreshURL string `json:"onboardingRefreshUrl" yaml:"onboardingRefreshUrl"`
	OnboardingReturnURL  string `json:"onboardingReturnUrl" yaml:"onboardingReturnUrl"`

	MaxWebhookBodySize string `json:"maxWebhookBodySize" yaml:"maxWebhookBodySize"`
}

// MissionsConfig defines the mission assignment schedule
type MissionsConfig struct {
	// Enable the in-process scheduler in the worker
	Enabled bool `json:"enabled" yaml:"enabled"`

	// IANA timezone used for period boundaries and cron expressions
	Timezone string `json:"timezone" yaml:"timezone"`

	DailyCount  int `json:"dailyCount" yaml:"dailyCount"`
	WeeklyCount int `json:"weeklyCount" yaml:"weeklyCount"`

	// Users written per database transaction
	BatchSize int `json:"batchSize" yaml:"batchSize"`

	DailyCron  string `json:"dailyCron" yaml:"dailyCron"`
	WeeklyCron string `json:"weeklyCron" yaml:"weeklyCron"`
}

// GamificationConfig defines XP rewards
type GamificationConfig struct {
	BookingCompletionXP int64 `json:"bookingCompletionXp" yaml:"bookingCompletionXp"`

	// The worker re-runs the completion reward for completed bookings left
	// unrewarded for longer than RewardSweepGrace.
	RewardSweepInterval time.Duration `json:"rewardSweepInterval" yaml:"rewardSweepInterval"`
	RewardSweepGrace    time.Duration `json:"rewardSweepGrace" yaml:"rewardSweepGrace"`
	RewardSweepBatch    int           `json:"rewardSweepBatch" yaml:"rewardSweepBatch"`
}

// MetricsConfig toggles the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// Location resolves the configured mission timezone.
func (c *MissionsConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", c.Timezone)
	}

	return loc, nil
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env keys are aligned with the casing already used in YAML,
	// e.g. STRIPE_WEBHOOKSECRET -> stripe.webhookSecret
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if _, err := cfg.Missions.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Stripe == nil {
		cfg.Stripe = &StripeConfig{}
	}
	if cfg.Stripe.Currency == "" {
		cfg.Stripe.Currency = defaultCurrency
	}
	if cfg.Stripe.MaxWebhookBodySize == "" {
		cfg.Stripe.MaxWebhookBodySize = defaultWebhookBodySize
	}

	if cfg.Missions == nil {
		cfg.Missions = &MissionsConfig{}
	}
	if cfg.Missions.Timezone == "" {
		cfg.Missions.Timezone = defaultTimezone
	}
	if cfg.Missions.DailyCount <= 0 {
		cfg.Missions.DailyCount = defaultDailyMissionCount
	}
	if cfg.Missions.WeeklyCount <= 0 {
		cfg.Missions.WeeklyCount = defaultWeeklyMissionCount
	}
	if cfg.Missions.BatchSize <= 0 {
		cfg.Missions.BatchSize = defaultMissionBatchSize
	}
	if cfg.Missions.DailyCron == "" {
		cfg.Missions.DailyCron = defaultDailyMissionCron
	}
	if cfg.Missions.WeeklyCron == "" {
		cfg.Missions.WeeklyCron = defaultWeeklyMissionCron
	}

	if cfg.Gamification == nil {
		cfg.Gamification = &GamificationConfig{}
	}
	if cfg.Gamification.BookingCompletionXP <= 0 {
		cfg.Gamification.BookingCompletionXP = defaultBookingCompletionXP
	}
	if cfg.Gamification.RewardSweepInterval <= 0 {
		cfg.Gamification.RewardSweepInterval = defaultRewardSweepInterval
	}
	if cfg.Gamification.RewardSweepGrace <= 0 {
		cfg.Gamification.RewardSweepGrace = defaultRewardSweepGrace
	}
	if cfg.Gamification.RewardSweepBatch <= 0 {
		cfg.Gamification.RewardSweepBatch = defaultRewardSweepBatch
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first incomplete index.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}

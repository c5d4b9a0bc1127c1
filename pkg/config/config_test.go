package config

import (
	"bistro/pkg/logger"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validConfig() *Config {
	return &Config{
		MongoURI:          DefaultMongoURI,
		MongoDatabaseName: DefaultMongoDatabaseName,
		MongoConnTimeout:  DefaultMongoConnTimeout,
		RedisAddr:         DefaultRedisAddr,
		CatalogCacheTTL:   DefaultCatalogCacheTTL,
		Port:              DefaultPort,
		RequestTimeout:    DefaultRequestTimeout,
		MaxRequestSize:    DefaultMaxRequestSize,
		ReadTimeout:       DefaultReadTimeout,
		WriteTimeout:      DefaultWriteTimeout,
		IdleTimeout:       DefaultIdleTimeout,
		ShutdownTimeout:   DefaultShutdownTimeout,
		PhoneRegion:       DefaultPhoneRegion,
		OrdersTopic:       DefaultOrdersTopic,
		BookingsTopic:     DefaultBookingsTopic,
		Engine:            DefaultEngine(),
		Log:               logger.Discard(),
	}
}

func TestValidate_Defaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("default configuration should be valid, got: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantMsg string
	}{
		{
			name:    "port out of range",
			mutate:  func(cfg *Config) { cfg.Port = "70000" },
			wantMsg: "Port must be between 1 and 65535",
		},
		{
			name:    "mongo uri without scheme",
			mutate:  func(cfg *Config) { cfg.MongoURI = "localhost:27017" },
			wantMsg: "MongoURI must start with",
		},
		{
			name:    "empty database name",
			mutate:  func(cfg *Config) { cfg.MongoDatabaseName = "" },
			wantMsg: "MongoDatabaseName cannot be empty",
		},
		{
			name:    "zero cache ttl",
			mutate:  func(cfg *Config) { cfg.CatalogCacheTTL = 0 },
			wantMsg: "CatalogCacheTTL must be positive",
		},
		{
			name:    "bad phone region",
			mutate:  func(cfg *Config) { cfg.PhoneRegion = "POL" },
			wantMsg: "PhoneRegion must be a two-letter region code",
		},
		{
			name:    "empty topic",
			mutate:  func(cfg *Config) { cfg.BookingsTopic = "" },
			wantMsg: "Kafka topics cannot be empty",
		},
		{
			name:    "engine errors are included",
			mutate:  func(cfg *Config) { cfg.Engine.Tables = nil },
			wantMsg: "at least one booking table is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error containing %q", tt.wantMsg)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error to contain %q, got: %v", tt.wantMsg, err)
			}
		})
	}
}

func TestValidate_AccumulatesErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "abc"
	cfg.MaxRequestSize = 0
	cfg.ShutdownTimeout = -time.Second

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"1. ", "2. ", "3. "} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected numbered entry %q in: %v", want, err)
		}
	}
}

func TestEngineValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *Engine)
		wantMsg string
	}{
		{
			name:    "min above max",
			mutate:  func(e *Engine) { e.Amount.Min = 10 },
			wantMsg: "AmountMin (10) must be <= AmountMax (9)",
		},
		{
			name:    "default outside range",
			mutate:  func(e *Engine) { e.Amount.Default = 0 },
			wantMsg: "AmountDefault (0) must be between",
		},
		{
			name:    "negative delivery fee",
			mutate:  func(e *Engine) { e.DeliveryFee = decimal.NewFromInt(-1) },
			wantMsg: "DeliveryFee cannot be negative",
		},
		{
			name:    "open after close",
			mutate:  func(e *Engine) { e.OpenHour, e.CloseHour = 20, 12 },
			wantMsg: "booking hours must satisfy",
		},
		{
			name:    "close past midnight",
			mutate:  func(e *Engine) { e.CloseHour = 25 },
			wantMsg: "booking hours must satisfy",
		},
		{
			name:    "empty api url",
			mutate:  func(e *Engine) { e.APIBaseURL = "" },
			wantMsg: "APIBaseURL cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := DefaultEngine()
			tt.mutate(&e)

			errs := e.Validate()
			if len(errs) == 0 {
				t.Fatalf("expected an error containing %q", tt.wantMsg)
			}
			found := false
			for _, msg := range errs {
				if strings.Contains(msg, tt.wantMsg) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %q among %v", tt.wantMsg, errs)
			}
		})
	}
}

func TestLoadEngine_EnvOverrides(t *testing.T) {
	t.Setenv(EnvAmountMax, "5")
	t.Setenv(EnvDeliveryFee, "12.50")
	t.Setenv(EnvBookingTables, "4, 7 ,9")
	t.Setenv(EnvBookingOpenHour, "11.5")
	t.Setenv(EnvAPIClientTimeout, "3s")

	e := loadEngine()

	if e.Amount.Max != 5 {
		t.Errorf("expected amount max 5, got %d", e.Amount.Max)
	}
	if !e.DeliveryFee.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("expected delivery fee 12.5, got %s", e.DeliveryFee)
	}
	if len(e.Tables) != 3 || e.Tables[0] != 4 || e.Tables[1] != 7 || e.Tables[2] != 9 {
		t.Errorf("expected tables [4 7 9], got %v", e.Tables)
	}
	if e.OpenHour != 11.5 {
		t.Errorf("expected open hour 11.5, got %v", e.OpenHour)
	}
	if e.APIClientTimeout != 3*time.Second {
		t.Errorf("expected client timeout 3s, got %s", e.APIClientTimeout)
	}
}

func TestLoadEngine_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv(EnvAmountMin, "one")
	t.Setenv(EnvDeliveryFee, "free")
	t.Setenv(EnvBookingTables, "1,x")

	e := loadEngine()
	def := DefaultEngine()

	if e.Amount.Min != def.Amount.Min {
		t.Errorf("expected default amount min %d, got %d", def.Amount.Min, e.Amount.Min)
	}
	if !e.DeliveryFee.Equal(def.DeliveryFee) {
		t.Errorf("expected default delivery fee %s, got %s", def.DeliveryFee, e.DeliveryFee)
	}
	if len(e.Tables) != len(def.Tables) {
		t.Errorf("expected default tables %v, got %v", def.Tables, e.Tables)
	}
}

func TestParseTables(t *testing.T) {
	tests := []struct {
		input   string
		want    []int
		wantErr bool
	}{
		{input: "1,2,3", want: []int{1, 2, 3}},
		{input: " 5 , 6 ", want: []int{5, 6}},
		{input: "1,,2,", want: []int{1, 2}},
		{input: "", want: nil},
		{input: "1,two", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseTables(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTables(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTables(%q) unexpected error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseTables(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseTables(%q)[%d] = %d, want %d", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRedactMongoURI(t *testing.T) {
	got := redactMongoURI("mongodb://admin:secret@db:27017")
	if got != "mongodb://***:***@db:27017" {
		t.Errorf("credentials not redacted: %s", got)
	}
}

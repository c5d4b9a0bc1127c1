package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AmountWidget bounds a quantity counter.
type AmountWidget struct {
	Min     int
	Max     int
	Default int
}

// Engine is the immutable configuration handed to the ordering engine's
// components at construction. It is passed by value.
type Engine struct {
	Amount            AmountWidget
	DeliveryFee       decimal.Decimal
	BookingWindowDays int
	OpenHour          float64
	CloseHour         float64
	Tables            []int
	APIBaseURL        string
	APIClientTimeout  time.Duration
}

// DefaultEngine returns the engine settings used when nothing is configured.
func DefaultEngine() Engine {
	tables, _ := parseTables(DefaultBookingTables)
	return Engine{
		Amount: AmountWidget{
			Min:     DefaultAmountMin,
			Max:     DefaultAmountMax,
			Default: DefaultAmountDefault,
		},
		DeliveryFee:       decimal.RequireFromString(DefaultDeliveryFee),
		BookingWindowDays: DefaultBookingWindowDays,
		OpenHour:          DefaultBookingOpenHour,
		CloseHour:         DefaultBookingCloseHour,
		Tables:            tables,
		APIBaseURL:        DefaultAPIBaseURL,
		APIClientTimeout:  DefaultAPIClientTimeout,
	}
}

func loadEngine() Engine {
	e := DefaultEngine()

	e.Amount.Min = getEnvNum(EnvAmountMin, e.Amount.Min)
	e.Amount.Max = getEnvNum(EnvAmountMax, e.Amount.Max)
	e.Amount.Default = getEnvNum(EnvAmountDefault, e.Amount.Default)
	if fee, err := decimal.NewFromString(getEnvStr(EnvDeliveryFee, DefaultDeliveryFee)); err == nil {
		e.DeliveryFee = fee
	}
	e.BookingWindowDays = getEnvNum(EnvBookingWindowDays, e.BookingWindowDays)
	e.OpenHour = getEnvFloat(EnvBookingOpenHour, e.OpenHour)
	e.CloseHour = getEnvFloat(EnvBookingCloseHour, e.CloseHour)
	if tables, err := parseTables(getEnvStr(EnvBookingTables, DefaultBookingTables)); err == nil {
		e.Tables = tables
	}
	e.APIBaseURL = getEnvStr(EnvAPIBaseURL, e.APIBaseURL)
	e.APIClientTimeout = getEnvDuration(EnvAPIClientTimeout, e.APIClientTimeout)

	return e
}

// Validate returns one message per problem, empty when the settings are usable.
func (e Engine) Validate() []string {
	var errors []string

	if e.Amount.Min > e.Amount.Max {
		errors = append(errors, fmt.Sprintf("AmountMin (%d) must be <= AmountMax (%d)", e.Amount.Min, e.Amount.Max))
	}
	if e.Amount.Default < e.Amount.Min || e.Amount.Default > e.Amount.Max {
		errors = append(errors, fmt.Sprintf("AmountDefault (%d) must be between AmountMin (%d) and AmountMax (%d)", e.Amount.Default, e.Amount.Min, e.Amount.Max))
	}
	if e.DeliveryFee.IsNegative() {
		errors = append(errors, fmt.Sprintf("DeliveryFee cannot be negative, got: %s", e.DeliveryFee))
	}
	if e.BookingWindowDays < 0 {
		errors = append(errors, fmt.Sprintf("BookingWindowDays cannot be negative, got: %d", e.BookingWindowDays))
	}
	if e.OpenHour < 0 || e.CloseHour > 24 || e.OpenHour >= e.CloseHour {
		errors = append(errors, fmt.Sprintf("booking hours must satisfy 0 <= open < close <= 24, got: %v-%v", e.OpenHour, e.CloseHour))
	}
	if len(e.Tables) == 0 {
		errors = append(errors, "at least one booking table is required")
	}
	if e.APIBaseURL == "" {
		errors = append(errors, "APIBaseURL cannot be empty")
	}

	return errors
}

func parseTables(s string) ([]int, error) {
	var tables []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid table id %q: %w", part, err)
		}
		tables = append(tables, id)
	}
	return tables, nil
}

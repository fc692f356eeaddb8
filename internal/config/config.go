// Package config loads the coordctl client configuration file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/coordctl/internal/coordinator"
)

// ClientConfig is the on-disk configuration for the coordctl binary.
type ClientConfig struct {
	TokenStorePath string
	CatalogPath    string
	AdminAddr      string
	AdminToken     string
	CorsOrigins    []string
	Coordinator    coordinator.Config
}

type fileConfig struct {
	TokenStorePath string   `toml:"token_store_path"`
	CatalogPath    string   `toml:"catalog_path"`
	AdminAddr      string   `toml:"admin_addr"`
	AdminToken     string   `toml:"admin_token"`
	CorsOrigins    []string `toml:"cors_origins"`

	AppID                uint32 `toml:"app_id"`
	HelloType            uint32 `toml:"hello_type"`
	WelcomeType          uint32 `toml:"welcome_type"`
	PurchaseRequestType  uint32 `toml:"purchase_request_type"`
	PurchaseReplyType    uint32 `toml:"purchase_reply_type"`
	BalanceBroadcastType uint32 `toml:"balance_broadcast_type"`
	Deadline             string `toml:"deadline"`
	BalanceWait          string `toml:"balance_wait"`
	HelloInterval        string `toml:"hello_interval"`
}

func Default() ClientConfig {
	return ClientConfig{
		TokenStorePath: "local/tokens.toml",
		CatalogPath:    "local/catalog.toml",
		AdminAddr:      ":9200",
		Coordinator:    coordinator.DefaultConfig(),
	}
}

// Load reads path over the defaults. Absent keys keep their default values.
func Load(path string) (ClientConfig, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return ClientConfig{}, fmt.Errorf("load client config: %w", err)
	}

	if meta.IsDefined("token_store_path") {
		cfg.TokenStorePath = strings.TrimSpace(raw.TokenStorePath)
	}
	if meta.IsDefined("catalog_path") {
		cfg.CatalogPath = strings.TrimSpace(raw.CatalogPath)
	}
	if meta.IsDefined("admin_addr") {
		cfg.AdminAddr = strings.TrimSpace(raw.AdminAddr)
	}
	if meta.IsDefined("admin_token") {
		cfg.AdminToken = strings.TrimSpace(raw.AdminToken)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = raw.CorsOrigins
	}

	if meta.IsDefined("app_id") {
		cfg.Coordinator.AppID = raw.AppID
	}
	if meta.IsDefined("hello_type") {
		cfg.Coordinator.HelloType = raw.HelloType
	}
	if meta.IsDefined("welcome_type") {
		cfg.Coordinator.WelcomeType = raw.WelcomeType
	}
	if meta.IsDefined("purchase_request_type") {
		cfg.Coordinator.PurchaseRequestType = raw.PurchaseRequestType
	}
	if meta.IsDefined("purchase_reply_type") {
		cfg.Coordinator.PurchaseReplyType = raw.PurchaseReplyType
	}
	if meta.IsDefined("balance_broadcast_type") {
		cfg.Coordinator.BalanceBroadcastType = raw.BalanceBroadcastType
	}
	if meta.IsDefined("deadline") {
		d, err := parseDuration(raw.Deadline, "deadline")
		if err != nil {
			return ClientConfig{}, err
		}
		cfg.Coordinator.Deadline = d
	}
	if meta.IsDefined("balance_wait") {
		d, err := parseDuration(raw.BalanceWait, "balance_wait")
		if err != nil {
			return ClientConfig{}, err
		}
		cfg.Coordinator.BalanceWait = d
	}
	if meta.IsDefined("hello_interval") {
		d, err := parseDuration(raw.HelloInterval, "hello_interval")
		if err != nil {
			return ClientConfig{}, err
		}
		cfg.Coordinator.HelloInterval = d
	}

	if err := Validate(cfg); err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}

func Validate(cfg ClientConfig) error {
	if strings.TrimSpace(cfg.TokenStorePath) == "" {
		return fmt.Errorf("client config missing token_store_path")
	}
	if err := cfg.Coordinator.Validate(); err != nil {
		return err
	}
	return nil
}

func parseDuration(raw, key string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

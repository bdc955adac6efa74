package config

import (
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/chainsafe/jackpot-middleware/pkg/wallet"
)

// EnvWalletPrivateKey overrides wallet.private_key when set.
const EnvWalletPrivateKey = "JACKPOT_WALLET_PRIVATE_KEY"

// Wallet modes.
const (
	WalletModeKeyed   = "keyed"
	WalletModeEIP1193 = "eip1193"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Network    NetworkConfig    `yaml:"network"`
	Ethereum   EthereumConfig   `yaml:"ethereum"`
	Wallet     WalletConfig     `yaml:"wallet"`
	Contracts  ContractsConfig  `yaml:"contracts"`
	Tokens     TokensConfig     `yaml:"tokens"`
	Pricing    PricingConfig    `yaml:"pricing"`
	Hint       HintConfig       `yaml:"hint"`
	Refresh    RefreshConfig    `yaml:"refresh"`
	Auth       AuthConfig       `yaml:"auth"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"127.0.0.1"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"3m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
}

// NetworkConfig is the chain the wallet must be on, handed to the wallet when
// switching or adding it.
type NetworkConfig struct {
	ChainID        uint64               `yaml:"chain_id" default:"146" validate:"required"`
	Name           string               `yaml:"name" default:"Sonic" validate:"required"`
	RPCURL         string               `yaml:"rpc_url" default:"https://rpc.soniclabs.com" validate:"required,url"`
	ExplorerURL    string               `yaml:"explorer_url" default:"https://sonicscan.org" validate:"omitempty,url"`
	NativeCurrency NativeCurrencyConfig `yaml:"native_currency"`
}

// NativeCurrencyConfig describes the gas token.
type NativeCurrencyConfig struct {
	Name     string `yaml:"name" default:"Sonic" validate:"required"`
	Symbol   string `yaml:"symbol" default:"S" validate:"required"`
	Decimals uint8  `yaml:"decimals" default:"18" validate:"max=36"`
}

// Descriptor converts the network settings into the wallet descriptor.
func (c *NetworkConfig) Descriptor() wallet.Network {
	return wallet.Network{
		ChainID: c.ChainID,
		Name:    c.Name,
		RPCURL:  c.RPCURL,
		NativeCurrency: wallet.NativeCurrency{
			Name:     c.NativeCurrency.Name,
			Symbol:   c.NativeCurrency.Symbol,
			Decimals: c.NativeCurrency.Decimals,
		},
		ExplorerURL: c.ExplorerURL,
	}
}

// EthereumConfig contains transaction settings for the chain client
type EthereumConfig struct {
	GasLimit       uint64        `yaml:"gas_limit"`
	MaxGasPrice    string        `yaml:"max_gas_price" validate:"omitempty,numeric"`
	ReceiptTimeout time.Duration `yaml:"receipt_timeout" default:"2m"`
	CallTimeout    time.Duration `yaml:"call_timeout" default:"15s"`
}

// MaxGasPriceWei parses MaxGasPrice; nil means uncapped.
func (c *EthereumConfig) MaxGasPriceWei() *big.Int {
	if c.MaxGasPrice == "" {
		return nil
	}
	v, ok := new(big.Int).SetString(c.MaxGasPrice, 10)
	if !ok {
		return nil
	}
	return v
}

// WalletConfig selects how transactions are signed.
type WalletConfig struct {
	Mode          string        `yaml:"mode" default:"keyed" validate:"oneof=keyed eip1193"`
	PrivateKey    string        `yaml:"private_key"`
	Endpoint      string        `yaml:"endpoint" validate:"omitempty,url"`
	WatchInterval time.Duration `yaml:"watch_interval" default:"5s"`
	AutoConnect   bool          `yaml:"auto_connect" default:"true"`
}

// ContractsConfig holds the deployed contract addresses.
type ContractsConfig struct {
	GameToken    string `yaml:"game_token" validate:"required,eth_addr"`
	JackpotGame  string `yaml:"jackpot_game" validate:"required,eth_addr"`
	BondingCurve string `yaml:"bonding_curve" validate:"required,eth_addr"`
}

// TokensConfig holds decimal exponents. The game token and the native
// currency use different exponents.
type TokensConfig struct {
	GameSymbol   string `yaml:"game_symbol" default:"GAME"`
	GameDecimals uint8  `yaml:"game_decimals" default:"6" validate:"max=36"`
}

// PricingConfig holds the bonding curve constants not exposed on-chain.
type PricingConfig struct {
	Unit             string `yaml:"unit" default:"1000000" validate:"numeric"`
	PriceDenominator string `yaml:"price_denominator" default:"1000000" validate:"numeric"`
}

// UnitInt returns Unit as an integer.
func (c *PricingConfig) UnitInt() *big.Int {
	v, _ := new(big.Int).SetString(c.Unit, 10)
	return v
}

// DenominatorInt returns PriceDenominator as an integer.
func (c *PricingConfig) DenominatorInt() *big.Int {
	v, _ := new(big.Int).SetString(c.PriceDenominator, 10)
	return v
}

// HintConfig points at the optional external hint service.
type HintConfig struct {
	Endpoint string        `yaml:"endpoint" validate:"omitempty,url"`
	Timeout  time.Duration `yaml:"timeout" default:"5s"`
}

// RefreshConfig controls the periodic snapshot refresh. Zero disables it.
type RefreshConfig struct {
	Interval time.Duration `yaml:"interval" default:"30s"`
}

// AuthConfig contains JWKS settings for bearer token validation on the API.
type AuthConfig struct {
	Enabled bool   `yaml:"enabled"`
	JWKSURL string `yaml:"jwks_url" validate:"required_if=Enabled true,omitempty,url"`
	Issuer  string `yaml:"issuer"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error dpanic panic fatal"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`

	// Rotation, used when OutputPath is a file.
	MaxSizeMB  int  `yaml:"max_size_mb" default:"100" validate:"min=0"`
	MaxBackups int  `yaml:"max_backups" default:"5" validate:"min=0"`
	MaxAgeDays int  `yaml:"max_age_days" default:"30" validate:"min=0"`
	Compress   bool `yaml:"compress"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes, applies defaults and environment
// overrides, then validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if key := os.Getenv(EnvWalletPrivateKey); key != "" {
		cfg.Wallet.PrivateKey = key
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	switch c.Wallet.Mode {
	case WalletModeKeyed:
		if strings.TrimSpace(c.Wallet.PrivateKey) == "" {
			return fmt.Errorf("wallet.private_key (or %s) is required in keyed mode", EnvWalletPrivateKey)
		}
	case WalletModeEIP1193:
		if c.Wallet.Endpoint == "" {
			return fmt.Errorf("wallet.endpoint is required in eip1193 mode")
		}
	}

	if u := c.Pricing.UnitInt(); u == nil || u.Sign() <= 0 {
		return fmt.Errorf("pricing.unit must be positive")
	}
	if d := c.Pricing.DenominatorInt(); d == nil || d.Sign() <= 0 {
		return fmt.Errorf("pricing.price_denominator must be positive")
	}
	if c.Ethereum.MaxGasPrice != "" && c.Ethereum.MaxGasPriceWei() == nil {
		return fmt.Errorf("ethereum.max_gas_price must be a base-10 integer")
	}
	return nil
}

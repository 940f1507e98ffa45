package cloudev

import (
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config carries everything a Client binds at construction. Logger
// toggles the logrus-backed call logger; a custom sink can be injected
// with WithCallLogger instead.
type Config struct {
	Host       string `yaml:"host"`
	APIKey     string `yaml:"api_key"`
	MerchantID string `yaml:"merchant_id"`
	Logger     bool   `yaml:"logger"`
}

var defaultConfigFilePath = xdg.ConfigHome + "/cloud-ev/config.yaml"

func GetConfigFromFile(inputConfigFile string) (*Config, error) {
	if inputConfigFile == "" {
		inputConfigFile = defaultConfigFilePath
	}
	f, err := os.Open(inputConfigFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	err = yaml.NewDecoder(f).Decode(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func SaveConfig(cfg *Config, configFile string) error {
	f, err := os.OpenFile(configFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	return yaml.NewEncoder(f).Encode(cfg)
}

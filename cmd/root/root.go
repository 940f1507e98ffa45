package root

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/togtokh-dev/cloud-ev/cloudev"
)

var (
	cfgFile  string
	logLevel string
	cfg      *cloudev.Config
	client   *cloudev.Client
	log      = logrus.StandardLogger()
)

var RootCmd = &cobra.Command{
	Use:   "cloud-ev",
	Short: "cloud-ev CLI - Browse charging parks, run sessions and settle invoices",
	Long: `cloud-ev is a command line client for the cloud-ev charging network API.
You can list parks and connectors, quote prices, start/stop charging sessions,
watch live session telemetry, and pay invoices.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setLogLevel(); err != nil {
			return err
		}

		// Commands that don't talk to the API skip client setup
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		if err := initConfig(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		if err := initClient(); err != nil {
			return fmt.Errorf("unable to initialize client: %w", err)
		}

		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/cloud-ev/config.yaml)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	viper.BindPFlag("config", RootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", RootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetEnvPrefix("CLOUDEV")
	viper.AutomaticEnv()
}

func initConfig() error {
	configPath := ""

	if cfgFile != "" {
		configPath = cfgFile
		viper.SetConfigFile(cfgFile)
	} else {
		configPath = filepath.Join(xdg.ConfigHome, "cloud-ev", "config.yaml")

		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "cloud-ev"))
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		log.Debug("No config file found, using defaults and environment variables")
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
		configPath = viper.ConfigFileUsed()
	}

	var err error
	cfg, err = cloudev.GetConfigFromFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Config file not found, creating empty config")
			cfg = &cloudev.Config{}
		} else {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	// Environment variables and flags win over the file
	if viper.IsSet("host") {
		cfg.Host = viper.GetString("host")
	}
	if viper.IsSet("api_key") {
		cfg.APIKey = viper.GetString("api_key")
	}
	if viper.IsSet("merchant_id") {
		cfg.MerchantID = viper.GetString("merchant_id")
	}
	if viper.IsSet("logger") {
		cfg.Logger = viper.GetBool("logger")
	}

	return nil
}

func initClient() error {
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}

	var err error
	client, err = cloudev.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create cloud-ev client: %w", err)
	}

	return nil
}

func setLogLevel() error {
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", logLevel)
	}
	log.SetLevel(lvl)
	return nil
}

func Execute() error {
	return RootCmd.Execute()
}

func GetClient() *cloudev.Client {
	return client
}

func GetConfig() *cloudev.Config {
	return cfg
}

func GetLogger() *logrus.Logger {
	return log
}

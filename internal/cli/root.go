package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"store-offers-api/internal/storeclient"

	"github.com/cockroachdb/errors"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var Log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "storectl",
	Short: "Command line tools for the store offers API.",
	Long: `storectl manages store offers through the public HTTP API.

Settings come from flags, STORECTL_* environment variables or $HOME/.storectl.yaml.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.storectl.yaml)")

	rootCmd.PersistentFlags().String("api", "http://localhost:8080", "Base URL of the store API")
	rootCmd.PersistentFlags().String("token", "", "Bearer token sent with every request")
	rootCmd.PersistentFlags().Int("retries", 3, "Retries for failed requests")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "Per-request timeout")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")

	_ = viper.BindPFlag("api.url", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("api.token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("api.retries", rootCmd.PersistentFlags().Lookup("retries"))
	_ = viper.BindPFlag("api.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".storectl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("storectl")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
			os.Exit(1)
		}
	}

	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	SetLogLevel(levelString)
}

func SetLogLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "info":
		Log.SetLevel(logrus.InfoLevel)
	case "warning", "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	case "fatal":
		Log.SetLevel(logrus.FatalLevel)
	default:
		Log.Fatal("Bad error level string")
	}
}

func newClient() (*storeclient.Client, error) {
	return storeclient.New(storeclient.Options{
		BaseURL:  viper.GetString("api.url"),
		Token:    viper.GetString("api.token"),
		RetryMax: viper.GetInt("api.retries"),
		Timeout:  viper.GetDuration("api.timeout"),
		Logger:   Log,
	})
}

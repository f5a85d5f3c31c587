package store

import (
	"errors"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config keys, also readable from FAQ_<KEY> environment variables.
const (
	KeyData    = "data"
	KeyPolicy  = "policy"
	KeyLogFile = "log_file"
	KeyDebug   = "debug"
)

// Config exposes the settings the commands need.
type Config interface {
	// DataPath is the catalog file; empty selects the built-in questions.
	DataPath() string
	Policy() string
	LogFile() string
	Debug() bool
}

// LoadConfig reads .faq.yaml from $FAQ_CONFIG_PATH, the working directory or
// the home directory, then layers FAQ_* environment variables on top.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(viper.GetViper())
}

// LoadConfigFrom reads configuration into v. Commands bind their flags onto
// the same viper instance before calling it.
func LoadConfigFrom(v *viper.Viper) (Config, error) {
	v.SetDefault(KeyData, "")
	v.SetDefault(KeyPolicy, "single")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyDebug, false)
	v.SetConfigName(".faq") // .yaml is implicit
	v.SetEnvPrefix("FAQ")
	v.AutomaticEnv()

	if override := os.Getenv("FAQ_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	data, err := expand(v.GetString(KeyData))
	if err != nil {
		return nil, err
	}
	logFile, err := expand(v.GetString(KeyLogFile))
	if err != nil {
		return nil, err
	}
	return &fileConfig{
		Data:    data,
		Expand:  v.GetString(KeyPolicy),
		Log:     logFile,
		Verbose: v.GetBool(KeyDebug),
	}, nil
}

func expand(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return homedir.Expand(path)
}

type fileConfig struct {
	Data    string `json:"data"`
	Expand  string `json:"policy"`
	Log     string `json:"log_file"`
	Verbose bool   `json:"debug"`
}

func (f *fileConfig) DataPath() string { return f.Data }
func (f *fileConfig) Policy() string   { return f.Expand }
func (f *fileConfig) LogFile() string  { return f.Log }
func (f *fileConfig) Debug() bool      { return f.Verbose }

// StaticConfig is a Config built in code, mainly for tests.
type StaticConfig struct {
	Data    string
	Expand  string
	Log     string
	Verbose bool
}

func (s StaticConfig) DataPath() string { return s.Data }
func (s StaticConfig) Policy() string   { return s.Expand }
func (s StaticConfig) LogFile() string  { return s.Log }
func (s StaticConfig) Debug() bool      { return s.Verbose }

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Data   DataConfig
	Player PlayerConfig
	Speech SpeechConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DataConfig points at the static documents and asset directories the
// repositories read from. Paths are relative to the working directory
// unless absolute.
type DataConfig struct {
	QuestionsFile string
	CatalogFile   string
	AudioDir      string
	WebDir        string
}

// PlayerConfig carries listening-player defaults.
type PlayerConfig struct {
	// SecondsPerWord is the estimated audio length per word, used for
	// word jumps when a session has no timestamp track.
	SecondsPerWord float64
	// Rates are the playback speed multipliers offered to the user.
	Rates []float64
}

// SpeechConfig configures the synthesized-speech fallback used when a
// word's audio file cannot be played.
type SpeechConfig struct {
	Lang  string
	Rate  float64
	Pitch float64
}

type LoggerConfig struct {
	Level string
	Env   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults cover local use.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Data: DataConfig{
			QuestionsFile: viper.GetString("data.questions_file"),
			CatalogFile:   viper.GetString("data.catalog_file"),
			AudioDir:      viper.GetString("data.audio_dir"),
			WebDir:        viper.GetString("data.web_dir"),
		},
		Player: PlayerConfig{
			SecondsPerWord: viper.GetFloat64("player.seconds_per_word"),
			Rates:          floatSlice(viper.Get("player.rates")),
		},
		Speech: SpeechConfig{
			Lang:  viper.GetString("speech.lang"),
			Rate:  viper.GetFloat64("speech.rate"),
			Pitch: viper.GetFloat64("speech.pitch"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("SERVER_PORT")
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		config.Data.QuestionsFile = dir + "/questions.json"
		config.Data.CatalogFile = dir + "/listening_vocabulary.json"
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("data.questions_file", "data/questions.json")
	viper.SetDefault("data.catalog_file", "data/listening_vocabulary.json")
	viper.SetDefault("data.audio_dir", "assets/audio")
	viper.SetDefault("data.web_dir", "web")
	viper.SetDefault("player.seconds_per_word", 25)
	viper.SetDefault("player.rates", []float64{0.75, 1.0, 1.25, 1.5})
	viper.SetDefault("speech.lang", "en-GB")
	viper.SetDefault("speech.rate", 0.85)
	viper.SetDefault("speech.pitch", 1.0)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
}

func floatSlice(v interface{}) []float64 {
	switch vals := v.(type) {
	case []float64:
		return vals
	case []interface{}:
		out := make([]float64, 0, len(vals))
		for _, raw := range vals {
			switch n := raw.(type) {
			case float64:
				out = append(out, n)
			case int:
				out = append(out, float64(n))
			}
		}
		return out
	}
	return nil
}

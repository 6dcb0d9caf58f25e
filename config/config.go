package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bendazz/vector-practice/geometry"
	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 960)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Vector Practice")
	v.SetDefault("plot.width", 400)
	v.SetDefault("plot.height", 400)
	v.SetDefault("plot.device_pixel_ratio", 0.0)
	v.SetDefault("range.min", -5)
	v.SetDefault("range.max", 5)
	v.SetDefault("vectors.ax", 3)
	v.SetDefault("vectors.ay", 4)
	v.SetDefault("vectors.bx", 1)
	v.SetDefault("vectors.by", -2)
	v.SetDefault("generator.max_attempts", 1000)
	v.SetDefault("log.level", "info")
}

func (c *Config) GetWindowWidth() int {
	return c.getInt("WINDOW_WIDTH", "window.width")
}

func (c *Config) GetWindowHeight() int {
	return c.getInt("WINDOW_HEIGHT", "window.height")
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

// GetPlotWidth is the display width of each plot canvas.
func (c *Config) GetPlotWidth() int {
	return c.getInt("PLOT_WIDTH", "plot.width")
}

func (c *Config) GetPlotHeight() int {
	return c.getInt("PLOT_HEIGHT", "plot.height")
}

// GetDevicePixelRatio returns the configured ratio, or 0 to use the monitor's.
func (c *Config) GetDevicePixelRatio() float64 {
	dpr := c.config.GetFloat64("DEVICE_PIXEL_RATIO")
	if dpr == 0 {
		dpr = c.config.GetFloat64("plot.device_pixel_ratio")
	}

	return dpr
}

func (c *Config) GetRangeMin() int {
	return c.getInt("RANGE_MIN", "range.min")
}

func (c *Config) GetRangeMax() int {
	return c.getInt("RANGE_MAX", "range.max")
}

// GetInitialPair is the pair shown before the user edits or randomizes.
func (c *Config) GetInitialPair() geometry.VectorPair {
	return geometry.VectorPair{
		AX: c.getInt("VECTOR_AX", "vectors.ax"),
		AY: c.getInt("VECTOR_AY", "vectors.ay"),
		BX: c.getInt("VECTOR_BX", "vectors.bx"),
		BY: c.getInt("VECTOR_BY", "vectors.by"),
	}
}

func (c *Config) GetGeneratorMaxAttempts() int {
	return c.getInt("GENERATOR_MAX_ATTEMPTS", "generator.max_attempts")
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

// getInt prefers the environment variable and falls back to the yaml key.
// Zero is a legal value for several keys, so presence is checked rather than
// the value.
func (c *Config) getInt(envKey, key string) int {
	if _, ok := os.LookupEnv(envKey); ok {
		return c.config.GetInt(envKey)
	}

	return c.config.GetInt(key)
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}

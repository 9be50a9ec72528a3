package initutil

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"mazegen/pkg/logutil"
	"mazegen/pkg/maze"
)

// ErrInvalidConfig 配置文件读取失败或者配置值非法
var ErrInvalidConfig = errors.New("invalid config")

const (
	EnvPrefix  = "MAZEGEN"
	ConfigName = ".mazegen"

	FormatText = "text"
	FormatJSON = "json"
)

// Config 运行时配置
// 优先级: 命令行 flag > MAZEGEN_* 环境变量 > .mazegen.yaml > 默认值
type Config struct {
	Seed     uint64 `mapstructure:"seed"` // 0 表示随机种子
	Format   string `mapstructure:"format"`
	Style    string `mapstructure:"style"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// SetDefaults 注册默认值，Unmarshal 和环境变量只认识注册过的 key
func SetDefaults() {
	viper.SetDefault("seed", 0)
	viper.SetDefault("format", FormatText)
	viper.SetDefault("style", string(maze.StyleUnicode))
	viper.SetDefault("log_level", logutil.WARN.String())
	viper.SetDefault("log_file", "stderr")
}

// ReadConfig 读取配置文件并打开环境变量
// cfgFile 为空时在当前目录和 home 目录查找 .mazegen.yaml，找不到不算错
// 这里还不能写日志，日志要等 InitSystem 按配置初始化之后才可用
func ReadConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(ConfigName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Load 从 viper 取出配置并校验
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate 检查枚举类的配置值
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: format %q (text|json)", ErrInvalidConfig, c.Format)
	}
	var style maze.Style
	if err := style.Set(c.Style); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := logutil.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level 日志级别，配置非法时退回 WARN
func (c Config) Level() logutil.Level {
	level, _ := logutil.ParseLogLevel(c.LogLevel)
	return level
}

func (c Config) RenderStyle() maze.Style {
	return maze.Style(c.Style)
}

// InitSystem 读配置、初始化日志
func InitSystem(cfgFile string) (Config, error) {
	if err := ReadConfig(cfgFile); err != nil {
		return Config{}, err
	}
	cfg, err := Load()
	if err != nil {
		return Config{}, err
	}
	if err := logutil.InitLogger(cfg.LogFile, cfg.Level()); err != nil {
		return Config{}, err
	}

	if used := viper.ConfigFileUsed(); used != "" {
		logutil.Debug("使用配置文件: %s", used)
	}
	// 漂亮打印完整的结构体
	logutil.Info("config struct:\n%v", cfg)
	return cfg, nil
}

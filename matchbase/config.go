package matchbase

import (
	"errors"

	"github.com/kevin-chtw/tw_riichi/riichi"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Matchid        int32  `yaml:"matchid" mapstructure:"matchid"`
	Name           string `yaml:"name" mapstructure:"name"`
	StartingPoint  int64  `yaml:"starting_point" mapstructure:"starting_point"`
	ReturningPoint int64  `yaml:"returning_point" mapstructure:"returning_point"`
	LogDir         string `yaml:"log_dir" mapstructure:"log_dir"`
	LogLevel       string `yaml:"log_level" mapstructure:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:           "riichi",
		StartingPoint:  riichi.StartingPoint,
		ReturningPoint: riichi.ReturningPoint,
		LogLevel:       "info",
	}
}

// LoadConfig 读取 yaml 配置文件, 未配置的项使用默认值
func LoadConfig(file string) (*Config, error) {
	def := DefaultConfig()
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(file)
	v.SetDefault("name", def.Name)
	v.SetDefault("starting_point", def.StartingPoint)
	v.SetDefault("returning_point", def.ReturningPoint)
	v.SetDefault("log_level", def.LogLevel)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, err
	}
	return conf, conf.Validate()
}

func ParseConfig(data []byte) (*Config, error) {
	conf := DefaultConfig()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, err
	}
	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.StartingPoint <= 0 {
		return errors.New("starting_point must > 0")
	}
	if c.ReturningPoint < c.StartingPoint {
		return errors.New("returning_point must >= starting_point")
	}
	return nil
}

func (c *Config) startingScore() [riichi.NP4]int64 {
	var res [riichi.NP4]int64
	for i := range res {
		res[i] = c.StartingPoint
	}
	return res
}

func (c *Config) endOptions() []riichi.EndOption {
	return []riichi.EndOption{
		riichi.WithStartingScore(c.startingScore()),
		riichi.WithReturningPoint(c.ReturningPoint),
	}
}

package matchbase

import "github.com/kevin-chtw/tw_riichi/utils"

// SetupLogging 按配置把日志写到文件, 由 Matchmgr 在遇到新的日志目录时调用
func SetupLogging(conf *Config) error {
	return utils.SetupLogger(conf.LogDir, conf.LogLevel)
}

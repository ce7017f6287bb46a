// Package autoload initializes the global logger from LOG_* environment
// variables. Import for side effect:
//
//	import _ "github.com/napatw/shopmind/pkg/logger/autoload"
package autoload

import (
	configx "github.com/napatw/shopmind/pkg/config"
	logx "github.com/napatw/shopmind/pkg/logger"
)

func init() {
	conf, err := configx.New[logx.Config]("LOG")
	if err != nil {
		logx.Init()
		return
	}
	logx.Init(*conf)
}

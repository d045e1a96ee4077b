package event

import "github.com/sirupsen/logrus"

// 事件模块的日志记录器
// 功能：提供事件模块专用的日志记录功能
// 说明：使用logrus库，并添加"module"字段标识为"event"模块
var log = logrus.WithField("module", "event")

package task

import "github.com/sirupsen/logrus"

// 任务模块的日志记录器
// 功能：提供任务模块专用的日志记录功能
// 说明：使用logrus库，并添加"module"字段标识为"task"模块
var log = logrus.WithField("module", "task")

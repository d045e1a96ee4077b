package research

import "github.com/sirupsen/logrus"

// 研发模块的日志记录器
// 功能：提供研发模块专用的日志记录功能
// 说明：使用logrus库，并添加"module"字段标识为"research"模块
var log = logrus.WithField("module", "research")

package business

import "github.com/sirupsen/logrus"

// 企业模块的日志记录器
// 功能：提供企业模块专用的日志记录功能
// 说明：使用logrus库，并添加"module"字段标识为"business"模块
var log = logrus.WithField("module", "business")

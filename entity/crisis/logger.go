package crisis

import "github.com/sirupsen/logrus"

// 危机模块的日志记录器
// 功能：提供危机模块专用的日志记录功能
// 说明：使用logrus库，并添加"module"字段标识为"crisis"模块
var log = logrus.WithField("module", "crisis")

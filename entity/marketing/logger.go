package marketing

import "github.com/sirupsen/logrus"

// 营销模块的日志记录器
// 功能：提供营销模块专用的日志记录功能
// 说明：使用logrus库，并添加"module"字段标识为"marketing"模块
var log = logrus.WithField("module", "marketing")

package logger

import "go.uber.org/zap"

var L *zap.SugaredLogger

func init() {
	// main 里会用 Init 重建；这里兜底，避免测试环境拿到 nil
	l, _ := zap.NewDevelopment()
	L = l.Sugar()
}

func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		return
	}
	L = l.Sugar()
}


//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
//版权所有（c）2016 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/btcsuite/feebump/boost"
	"github.com/btcsuite/feebump/broadcast"
	"github.com/btcsuite/feebump/feeoracle"
)

//logWriter实现一个io.Writer，同时输出到标准错误和日志旋转器的
//写入端。标准输出保留给命令结果。
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

//每个子系统的记录器。所有子系统记录器都写入同一个后端。
//
//在调用initLogRotator之前，不能使用日志旋转器。
var (
//backendLog是用于创建所有子系统记录器的日志后端。
	backendLog = btclog.NewBackend(logWriter{})

//logRotator是写入日志文件的旋转器。
	logRotator *rotator.Rotator

	log      = backendLog.Logger("BUMP")
	boostLog = backendLog.Logger("BOST")
	feeoLog  = backendLog.Logger("FEEO")
	bcstLog  = backendLog.Logger("BCST")
)

//初始化包全局记录器变量。
func init() {
	boost.UseLogger(boostLog)
	feeoracle.UseLogger(feeoLog)
	broadcast.UseLogger(bcstLog)
}

//subsystemLoggers将每个子系统标识符映射到其关联的记录器。
var subsystemLoggers = map[string]btclog.Logger{
	"BUMP": log,
	"BOST": boostLog,
	"FEEO": feeoLog,
	"BCST": bcstLog,
}

//initLogRotator初始化日志文件旋转器，将日志写入logFile并在
//同一目录中创建滚动文件。必须在使用包全局日志旋转器
//变量之前调用它。
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create log directory: %v", err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %v", err)
	}

	logRotator = r
	return nil
}

//setLogLevel设置子系统的日志级别。无效的子系统被忽略。
func setLogLevel(subsystemID string, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}

//如果级别无效，则默认为info。
	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

//setLogLevels将所有子系统记录器的日志级别设置为传递的级别。
func setLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		setLogLevel(subsystemID, logLevel)
	}
}

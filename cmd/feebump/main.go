
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
	"context"
	"fmt"
	"os"
)

func main() {
//在os.exit之后解决defer不工作的问题。
	if err := feebumpMain(); err != nil {
		os.Exit(1)
	}
}

//feebumpMain是main的实际实现；main检查其错误并退出，
//以便延迟的函数（如日志刷新）得以运行。
func feebumpMain() error {
	cfg, command, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	log.Debugf("Version %s on %s", version(), activeNet.Params.Name)

	a := newApp(cfg)
	defer a.close()

	ctx, stop := interruptContext(context.Background())
	defer stop()

	switch command {
	case "inspect":
		err = cfg.Inspect.run(ctx, a)
	case "rbf":
		err = cfg.RBF.run(ctx, a)
	case "cpfp":
		err = cfg.CPFP.run(ctx, a)
	case "broadcast":
		err = cfg.Broadcast.run(ctx, a)
	default:
		err = fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		log.Errorf("%s: %v", command, err)
	}
	return err
}

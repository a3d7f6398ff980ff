
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

package cfgutil

import (
	"errors"
	"net"
	"strings"
)

//errEmptyAddress在地址为空时返回。
var errEmptyAddress = errors.New("empty network address")

//NormalizeAddress返回host:port形式的地址，缺少端口时使用defaultPort。
//IPv6地址必须带方括号才能指定端口。无效的主机返回原始的解析错误。
func NormalizeAddress(addr string, defaultPort string) (hostport string, err error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", errEmptyAddress
	}

//先按带端口的地址解析；只有在补上默认端口后能解析成功时，
//才认为原来的错误是缺少端口。
	host, port, origErr := net.SplitHostPort(addr)
	if origErr == nil {
		return net.JoinHostPort(host, port), nil
	}
	addr = net.JoinHostPort(addr, defaultPort)
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return "", origErr
	}
	return addr, nil
}

//NormalizeAddresses规范化每个地址并按首次出现的顺序删除重复项。
func NormalizeAddresses(addrs []string, defaultPort string) ([]string, error) {
	var (
		normalized = make([]string, 0, len(addrs))
		seenSet    = make(map[string]struct{})
	)

	for _, addr := range addrs {
		normalizedAddr, err := NormalizeAddress(addr, defaultPort)
		if err != nil {
			return nil, err
		}
		if _, seen := seenSet[normalizedAddr]; seen {
			continue
		}
		normalized = append(normalized, normalizedAddr)
		seenSet[normalizedAddr] = struct{}{}
	}

	return normalized, nil
}


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
	"bytes"
	"fmt"
	"strings"
)

//semanticAlphabet是语义版本规范中预发布和构建元数据
//允许的字符。
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

//这些常量定义应用程序版本，并遵循语义版本2.0.0规范
//（http://semver.org/）。
const (
	appMajor uint = 0
	appMinor uint = 1
	appPatch uint = 0

//appPreRelease必须只包含语义字母表中的字符。
	appPreRelease = "alpha"
)

//appBuild在构建时使用链接器标志定义。
var appBuild string

//version以语义版本2.0.0规范格式返回应用程序版本。
func version() string {
	version := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)

	preRelease := normalizeVerString(appPreRelease)
	if preRelease != "" {
		version = fmt.Sprintf("%s-%s", version, preRelease)
	}

	build := normalizeVerString(appBuild)
	if build != "" {
		version = fmt.Sprintf("%s+%s", version, build)
	}

	return version
}

//normalizeVerString返回删除了语义字母表之外所有字符的字符串。
func normalizeVerString(str string) string {
	var result bytes.Buffer
	for _, r := range str {
		if strings.ContainsRune(semanticAlphabet, r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

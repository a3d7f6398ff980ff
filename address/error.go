
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

package address

import "fmt"

//错误代码标识无效地址的原因。
type ErrorCode uint8

const (
//errcharacter表示地址包含base58字母表之外的字符。
	ErrCharacter ErrorCode = iota

//errlength表示解码后的有效载荷不是版本+20字节哈希+校验和。
	ErrLength

//errchecksum表示尾随的4字节校验和不匹配。
	ErrChecksum

//errversion表示版本字节不是活动网络的p2pkh或p2sh版本。
	ErrVersion
)

var errStrs = [...]string{
	ErrCharacter: "ErrCharacter",
	ErrLength:    "ErrLength",
	ErrChecksum:  "ErrChecksum",
	ErrVersion:   "ErrVersion",
}

//字符串将错误代码返回为人类可读的名称。
func (e ErrorCode) String() string {
	if e < ErrorCode(len(errStrs)) {
		return errStrs[e]
	}
	return fmt.Sprintf("ErrorCode(%d)", e)
}

//错误描述无效的地址。
type Error struct {
Code ErrorCode //描述错误的类型
Desc string    //问题的人类可读描述
Err  error     //基本错误，可选
}

//错误满足错误接口并打印人类可读的错误。
func (e Error) Error() string {
	if e.Err != nil {
		return e.Desc + ": " + e.Err.Error()
	}
	return e.Desc
}

func addressError(c ErrorCode, desc string, err error) Error {
	return Error{Code: c, Desc: desc, Err: err}
}

//IsInvalidAddress返回err是否为地址解码错误。
func IsInvalidAddress(err error) bool {
	_, ok := err.(Error)
	return ok
}
